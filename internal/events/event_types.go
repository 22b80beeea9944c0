package events

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/campuslink/community-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPostCreated    EventType = "post_created"
	EventPostLiked      EventType = "post_liked"
	EventCommentAdded   EventType = "comment_added"
	EventReportFiled    EventType = "report_filed"
	EventReportResolved EventType = "report_resolved"
	EventUserSuspended  EventType = "user_suspended"
	EventConfigUpdated  EventType = "config_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a ULID and the current time.
func NewEvent(eventType EventType, actorID int64, payload interface{}) Event {
	return Event{
		ID:        ulid.Make().String(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// PostLikedPayload payload.
type PostLikedPayload struct {
	PostID    int64  `json:"post_id"`
	AuthorID  int64  `json:"author_id"`
	PostTitle string `json:"post_title"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	PostID    int64  `json:"post_id"`
	CommentID int64  `json:"comment_id"`
	AuthorID  int64  `json:"author_id"`
	PostTitle string `json:"post_title"`
	Preview   string `json:"preview"`
}

// ReportFiledPayload payload.
type ReportFiledPayload struct {
	ReportID   int64                   `json:"report_id"`
	TargetType domain.ReportTargetType `json:"target_type"`
	TargetID   int64                   `json:"target_id"`
	Reason     string                  `json:"reason"`
}

// ReportResolvedPayload payload.
type ReportResolvedPayload struct {
	ReportID   int64               `json:"report_id"`
	ReporterID int64               `json:"reporter_id"`
	Status     domain.ReportStatus `json:"status"`
}

// UserSuspendedPayload payload.
type UserSuspendedPayload struct {
	UserID int64             `json:"user_id"`
	Status domain.UserStatus `json:"status"`
}

// ConfigUpdatedPayload payload.
type ConfigUpdatedPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
