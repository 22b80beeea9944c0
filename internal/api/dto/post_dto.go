package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuslink/community-service/internal/domain"
)

// CreatePostRequest payload.
type CreatePostRequest struct {
	CategoryID int64  `json:"categoryId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// UpdatePostRequest payload.
type UpdatePostRequest struct {
	CategoryID int64  `json:"categoryId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// PostResponse is the public view of a post.
type PostResponse struct {
	ID           uuid.UUID         `json:"id"`
	AuthorID     int64             `json:"authorId"`
	CategoryID   int64             `json:"categoryId"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	Status       domain.PostStatus `json:"status"`
	ScamScore    int               `json:"scamScore"`
	LikeCount    int               `json:"likeCount"`
	CommentCount int               `json:"commentCount"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// NewPostResponse maps a domain post.
func NewPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:           post.PublicID,
		AuthorID:     post.AuthorID,
		CategoryID:   post.CategoryID,
		Title:        post.Title,
		Content:      post.Content,
		Status:       post.Status,
		ScamScore:    post.ScamScore,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

// NewPostResponses maps a slice of domain posts.
func NewPostResponses(posts []domain.Post) []PostResponse {
	result := make([]PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, NewPostResponse(&posts[i]))
	}
	return result
}
