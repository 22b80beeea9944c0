package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/service"
)

// NotificationsHandler exposes the member notification feed.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List handles GET /api/v1/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	page, pageSize, offset := pageParams(c)

	items, total, unread, err := h.notifications.ListForUser(c.Context(), actor.ID, pageSize, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("notifications", fiber.Map{
		"unreadCount": unread,
		"page":        dto.NewPage(dto.NewNotificationResponses(items), page, pageSize, total),
	}))
}

// MarkRead handles POST /api/v1/notifications/:notificationId/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "notificationId")
	if err != nil {
		return err
	}
	if err := h.notifications.MarkRead(c.Context(), actor.ID, id); err != nil {
		return err
	}
	return c.JSON(dto.OK("notification read", nil))
}

// MarkAllRead handles POST /api/v1/notifications/read-all.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.notifications.MarkAllRead(c.Context(), actor.ID); err != nil {
		return err
	}
	return c.JSON(dto.OK("all notifications read", nil))
}
