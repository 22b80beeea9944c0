package domain

import "time"

// NotificationType enumerates supported notification kinds.
type NotificationType string

const (
	NotificationPostLiked      NotificationType = "POST_LIKED"
	NotificationCommentAdded   NotificationType = "COMMENT_ADDED"
	NotificationReportResolved NotificationType = "REPORT_RESOLVED"
	NotificationAccountStatus  NotificationType = "ACCOUNT_STATUS"
)

// Notification is a per-member inbox entry.
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}
