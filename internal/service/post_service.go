package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

// PostService coordinates post workflows including likes and bookmarks.
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	reactions  repository.ReactionRepository
	dispatcher events.Dispatcher
}

// PostDependencies bundles repositories for the post service.
type PostDependencies struct {
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	ReactionRepo repository.ReactionRepository
	Dispatcher   events.Dispatcher
}

// PostCreateInput describes post creation payload.
type PostCreateInput struct {
	CategoryID int64
	Title      string
	Content    string
}

// PostUpdateInput describes editable post fields.
type PostUpdateInput struct {
	CategoryID int64
	Title      string
	Content    string
}

// NewPostService constructs the service.
func NewPostService(deps PostDependencies) *PostService {
	return &PostService{
		posts:      deps.PostRepo,
		categories: deps.CategoryRepo,
		reactions:  deps.ReactionRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create publishes a new post by the actor.
func (s *PostService) Create(ctx context.Context, actor *domain.User, input PostCreateInput) (*domain.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("title and content required", nil)
	}
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("category", nil)
		}
		return nil, err
	}

	post := &domain.Post{
		PublicID:   uuid.New(),
		AuthorID:   actor.ID,
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Content:    input.Content,
		Status:     domain.PostStatusActive,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPostCreated, actor.ID, post.ID))
	return post, nil
}

// GetByPublicID returns a post visible to the requester. Hidden and removed
// posts are only visible to their author and staff.
func (s *PostService) GetByPublicID(ctx context.Context, actor *domain.User, publicID uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("post", nil)
		}
		return nil, err
	}
	if post.Status != domain.PostStatusActive && !canModerate(actor) && (actor == nil || actor.ID != post.AuthorID) {
		return nil, apperrors.NewNotFound("post", nil)
	}
	return post, nil
}

// List returns active posts matching the filter, plus the total count.
func (s *PostService) List(ctx context.Context, filter repository.PostFilter) ([]domain.Post, int64, error) {
	if len(filter.Statuses) == 0 {
		filter.Statuses = []domain.PostStatus{domain.PostStatusActive}
	}
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update edits a post; only the author or staff may do so.
func (s *PostService) Update(ctx context.Context, actor *domain.User, publicID uuid.UUID, input PostUpdateInput) (*domain.Post, error) {
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("post", nil)
		}
		return nil, err
	}
	if post.AuthorID != actor.ID && !canModerate(actor) {
		return nil, apperrors.NewForbidden("not the author")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("title and content required", nil)
	}
	if input.CategoryID != post.CategoryID {
		if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("category", nil)
			}
			return nil, err
		}
	}

	post.CategoryID = input.CategoryID
	post.Title = input.Title
	post.Content = input.Content
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post (status REMOVED); only the author or staff may do so.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, publicID uuid.UUID) error {
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("post", nil)
		}
		return err
	}
	if post.AuthorID != actor.ID && !canModerate(actor) {
		return apperrors.NewForbidden("not the author")
	}
	return s.posts.UpdateStatus(ctx, post.ID, domain.PostStatusRemoved)
}

// Like records a like and notifies the author. Liking twice is a no-op.
func (s *PostService) Like(ctx context.Context, actor *domain.User, publicID uuid.UUID) error {
	post, err := s.GetByPublicID(ctx, actor, publicID)
	if err != nil {
		return err
	}
	added, err := s.reactions.AddLike(ctx, post.ID, actor.ID)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}
	if err := s.posts.AdjustLikeCount(ctx, post.ID, 1); err != nil {
		return err
	}
	if post.AuthorID != actor.ID {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventPostLiked, actor.ID, events.PostLikedPayload{
			PostID:    post.ID,
			AuthorID:  post.AuthorID,
			PostTitle: post.Title,
		}))
	}
	return nil
}

// Unlike removes a like. Removing a missing like is a no-op.
func (s *PostService) Unlike(ctx context.Context, actor *domain.User, publicID uuid.UUID) error {
	post, err := s.GetByPublicID(ctx, actor, publicID)
	if err != nil {
		return err
	}
	removed, err := s.reactions.RemoveLike(ctx, post.ID, actor.ID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return s.posts.AdjustLikeCount(ctx, post.ID, -1)
}

// Bookmark saves a post for the actor.
func (s *PostService) Bookmark(ctx context.Context, actor *domain.User, publicID uuid.UUID) error {
	post, err := s.GetByPublicID(ctx, actor, publicID)
	if err != nil {
		return err
	}
	_, err = s.reactions.AddBookmark(ctx, post.ID, actor.ID)
	return err
}

// Unbookmark drops a saved post.
func (s *PostService) Unbookmark(ctx context.Context, actor *domain.User, publicID uuid.UUID) error {
	post, err := s.GetByPublicID(ctx, actor, publicID)
	if err != nil {
		return err
	}
	_, err = s.reactions.RemoveBookmark(ctx, post.ID, actor.ID)
	return err
}

// ListBookmarks returns the actor's saved posts with the total count.
func (s *PostService) ListBookmarks(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Post, int64, error) {
	posts, err := s.reactions.ListBookmarkedPosts(ctx, actor.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reactions.CountBookmarks(ctx, actor.ID)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// SetStatus changes a post's moderation status (staff only, enforced at the
// route level).
func (s *PostService) SetStatus(ctx context.Context, publicID uuid.UUID, status domain.PostStatus) error {
	switch status {
	case domain.PostStatusActive, domain.PostStatusHidden, domain.PostStatusRemoved:
	default:
		return apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("post", nil)
		}
		return err
	}
	return s.posts.UpdateStatus(ctx, post.ID, status)
}

// SetScamScore records a moderation score in [0,100].
func (s *PostService) SetScamScore(ctx context.Context, publicID uuid.UUID, score int) error {
	if score < 0 || score > 100 {
		return apperrors.NewValidationError("score must be within 0..100", nil)
	}
	post, err := s.posts.GetByPublicID(ctx, publicID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("post", nil)
		}
		return err
	}
	return s.posts.SetScamScore(ctx, post.ID, score)
}

func canModerate(actor *domain.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == domain.RoleAdmin || actor.Role == domain.RoleModerator
}
