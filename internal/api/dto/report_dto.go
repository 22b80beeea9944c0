package dto

import (
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

// CreateReportRequest payload.
type CreateReportRequest struct {
	TargetType domain.ReportTargetType `json:"targetType"`
	TargetID   int64                   `json:"targetId"`
	Reason     string                  `json:"reason"`
}

// ResolveReportRequest payload.
type ResolveReportRequest struct {
	Status domain.ReportStatus `json:"status"`
}

// ReportResponse view.
type ReportResponse struct {
	ID         int64                   `json:"id"`
	ReporterID int64                   `json:"reporterId"`
	TargetType domain.ReportTargetType `json:"targetType"`
	TargetID   int64                   `json:"targetId"`
	Reason     string                  `json:"reason"`
	Status     domain.ReportStatus     `json:"status"`
	ResolvedBy *int64                  `json:"resolvedBy,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
	ResolvedAt *time.Time              `json:"resolvedAt,omitempty"`
}

// NewReportResponse maps a domain report.
func NewReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:         report.ID,
		ReporterID: report.ReporterID,
		TargetType: report.TargetType,
		TargetID:   report.TargetID,
		Reason:     report.Reason,
		Status:     report.Status,
		ResolvedBy: report.ResolvedBy,
		CreatedAt:  report.CreatedAt,
		ResolvedAt: report.ResolvedAt,
	}
}

// NewReportResponses maps a slice of domain reports.
func NewReportResponses(reports []domain.Report) []ReportResponse {
	result := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, NewReportResponse(&reports[i]))
	}
	return result
}
