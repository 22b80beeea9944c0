package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuslink/community-service/internal/config"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/repository"
)

// NotificationService turns domain events into inbox entries and serves the
// per-member notification feed.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cfg           config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
		cfg:           cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPostLiked, n.handlePostLiked)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleCommentAdded)
	n.dispatcher.Subscribe(events.EventReportResolved, n.handleReportResolved)
	n.dispatcher.Subscribe(events.EventUserSuspended, n.handleUserSuspended)
}

// ListForUser returns the member's notifications plus total and unread counts.
func (n *NotificationService) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, int64, error) {
	items, err := n.notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	total, err := n.notifications.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := n.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, unread, nil
}

// MarkRead flags one notification as read.
func (n *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return n.notifications.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead flags the member's whole inbox as read.
func (n *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return n.notifications.MarkAllRead(ctx, userID)
}

func (n *NotificationService) handlePostLiked(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PostLikedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("PostLiked", zap.Int64("post_id", payload.PostID))
	return n.store(ctx, &domain.Notification{
		UserID:  payload.AuthorID,
		Type:    domain.NotificationPostLiked,
		Message: fmt.Sprintf("Someone liked your post %q", payload.PostTitle),
	})
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CommentAddedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("CommentAdded", zap.Int64("post_id", payload.PostID))
	n.sendEmailNotificationStub(ctx, event)
	return n.store(ctx, &domain.Notification{
		UserID:  payload.AuthorID,
		Type:    domain.NotificationCommentAdded,
		Message: fmt.Sprintf("New comment on %q: %s", payload.PostTitle, payload.Preview),
	})
}

func (n *NotificationService) handleReportResolved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReportResolvedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ReportResolved", zap.Int64("report_id", payload.ReportID))
	return n.store(ctx, &domain.Notification{
		UserID:  payload.ReporterID,
		Type:    domain.NotificationReportResolved,
		Message: fmt.Sprintf("Your report was %s", strings.ToLower(string(payload.Status))),
	})
}

func (n *NotificationService) handleUserSuspended(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserSuspendedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("UserSuspended", zap.Int64("user_id", payload.UserID))
	n.sendWebhookNotificationStub(ctx, event)
	return n.store(ctx, &domain.Notification{
		UserID:  payload.UserID,
		Type:    domain.NotificationAccountStatus,
		Message: fmt.Sprintf("Your account status changed to %s", payload.Status),
	})
}

func (n *NotificationService) store(ctx context.Context, notification *domain.Notification) error {
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("store notification", zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
