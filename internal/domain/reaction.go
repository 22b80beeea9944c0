package domain

import "time"

// Like marks that a member liked a post. One per (post, user).
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Bookmark marks that a member saved a post for later.
type Bookmark struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}
