package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

// ReportService coordinates the moderation queue.
type ReportService struct {
	reports    repository.ReportRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewReportService constructs the service.
func NewReportService(reports repository.ReportRepository, posts repository.PostRepository, comments repository.CommentRepository, dispatcher events.Dispatcher) *ReportService {
	return &ReportService{reports: reports, posts: posts, comments: comments, dispatcher: dispatcher}
}

// File records a complaint about a post or comment.
func (s *ReportService) File(ctx context.Context, actor *domain.User, targetType domain.ReportTargetType, targetID int64, reason string) (*domain.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError("reason required", nil)
	}

	switch targetType {
	case domain.ReportTargetPost:
		if _, err := s.posts.GetByID(ctx, targetID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("post", nil)
			}
			return nil, err
		}
	case domain.ReportTargetComment:
		if _, err := s.comments.GetByID(ctx, targetID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("comment", nil)
			}
			return nil, err
		}
	default:
		return nil, apperrors.NewValidationError("unknown target type", map[string]any{"targetType": targetType})
	}

	report := &domain.Report{
		ReporterID: actor.ID,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
		Status:     domain.ReportStatusOpen,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventReportFiled, actor.ID, events.ReportFiledPayload{
		ReportID:   report.ID,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
	}))
	return report, nil
}

// List returns reports matching the filter plus the total count.
func (s *ReportService) List(ctx context.Context, filter repository.ReportFilter) ([]domain.Report, int64, error) {
	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reports.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Resolve closes a report as resolved or dismissed and notifies the reporter.
func (s *ReportService) Resolve(ctx context.Context, actor *domain.User, reportID int64, status domain.ReportStatus) (*domain.Report, error) {
	if status != domain.ReportStatusResolved && status != domain.ReportStatusDismissed {
		return nil, apperrors.NewValidationError("status must be RESOLVED or DISMISSED", nil)
	}
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, err
	}
	if report.Status != domain.ReportStatusOpen {
		return nil, apperrors.NewConflict("report already closed", nil)
	}

	now := time.Now()
	if err := s.reports.UpdateStatus(ctx, report.ID, status, actor.ID, now); err != nil {
		return nil, err
	}
	report.Status = status
	report.ResolvedBy = &actor.ID
	report.ResolvedAt = &now

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventReportResolved, actor.ID, events.ReportResolvedPayload{
		ReportID:   report.ID,
		ReporterID: report.ReporterID,
		Status:     status,
	}))
	return report, nil
}
