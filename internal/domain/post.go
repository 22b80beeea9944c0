package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus enumerates moderation states for posts.
type PostStatus string

const (
	PostStatusActive  PostStatus = "ACTIVE"
	PostStatusHidden  PostStatus = "HIDDEN"
	PostStatusRemoved PostStatus = "REMOVED"
)

// Post is the aggregate for member-authored content. PublicID is the stable
// identifier exposed in URLs; the serial ID stays internal. ScamScore is a
// moderation signal in [0,100], set by staff or an upstream scoring job.
type Post struct {
	ID           int64
	PublicID     uuid.UUID
	AuthorID     int64
	CategoryID   int64
	Title        string
	Content      string
	Status       PostStatus
	ScamScore    int
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
