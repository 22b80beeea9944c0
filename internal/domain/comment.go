package domain

import "time"

// Comment is a member reply attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
}
