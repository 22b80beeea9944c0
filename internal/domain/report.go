package domain

import "time"

// ReportTargetType identifies what kind of content was reported.
type ReportTargetType string

const (
	ReportTargetPost    ReportTargetType = "POST"
	ReportTargetComment ReportTargetType = "COMMENT"
)

// ReportStatus enumerates the moderation queue states.
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "OPEN"
	ReportStatusResolved  ReportStatus = "RESOLVED"
	ReportStatusDismissed ReportStatus = "DISMISSED"
)

// Report is a member complaint about a post or comment.
type Report struct {
	ID         int64
	ReporterID int64
	TargetType ReportTargetType
	TargetID   int64
	Reason     string
	Status     ReportStatus
	ResolvedBy *int64
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
