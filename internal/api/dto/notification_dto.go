package dto

import (
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

// NotificationResponse view.
type NotificationResponse struct {
	ID        int64                   `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NewNotificationResponses maps a slice of domain notifications.
func NewNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, NotificationResponse{
			ID:        notification.ID,
			Type:      notification.Type,
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}
	return result
}
