package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

const commentPreviewLen = 80

// CommentService coordinates comment workflows.
type CommentService struct {
	comments   repository.CommentRepository
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, posts: posts, dispatcher: dispatcher}
}

// Add attaches a comment to an active post and notifies the post author.
func (s *CommentService) Add(ctx context.Context, actor *domain.User, postID int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("content required", nil)
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("post", nil)
		}
		return nil, err
	}
	if post.Status != domain.PostStatusActive {
		return nil, apperrors.NewNotFound("post", nil)
	}

	comment := &domain.Comment{
		PostID:   post.ID,
		AuthorID: actor.ID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.posts.AdjustCommentCount(ctx, post.ID, 1); err != nil {
		return nil, err
	}

	if post.AuthorID != actor.ID {
		preview := comment.Content
		if len(preview) > commentPreviewLen {
			preview = preview[:commentPreviewLen]
		}
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventCommentAdded, actor.ID, events.CommentAddedPayload{
			PostID:    post.ID,
			CommentID: comment.ID,
			AuthorID:  post.AuthorID,
			PostTitle: post.Title,
			Preview:   preview,
		}))
	}
	return comment, nil
}

// List returns a post's comments oldest first, plus the total count.
func (s *CommentService) List(ctx context.Context, postID int64, limit, offset int) ([]domain.Comment, int64, error) {
	comments, err := s.comments.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Delete removes a comment; only the author or staff may do so.
func (s *CommentService) Delete(ctx context.Context, actor *domain.User, commentID int64) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("comment", nil)
		}
		return err
	}
	if comment.AuthorID != actor.ID && !canModerate(actor) {
		return apperrors.NewForbidden("not the author")
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	return s.posts.AdjustCommentCount(ctx, comment.PostID, -1)
}
