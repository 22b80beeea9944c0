package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/community-service/internal/domain"
)

// ReportFilter captures moderation queue parameters.
type ReportFilter struct {
	Status     *domain.ReportStatus
	TargetType *domain.ReportTargetType
	Limit      int
	Offset     int
}

// ReportRepository encapsulates report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.Report, error)
	Count(ctx context.Context, filter ReportFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus, resolvedBy int64, resolvedAt time.Time) error
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository instantiates repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

const reportColumns = "id, reporter_id, target_type, target_id, reason, status, resolved_by, created_at, resolved_at"

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (reporter_id, target_type, target_id, reason, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		report.ReporterID,
		report.TargetType,
		report.TargetID,
		report.Reason,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id=$1`
	var report domain.Report
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.ReporterID,
		&report.TargetType,
		&report.TargetID,
		&report.Reason,
		&report.Status,
		&report.ResolvedBy,
		&report.CreatedAt,
		&report.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter) ([]domain.Report, error) {
	clauses, args := reportFilterClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM reports WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		reportColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.ReporterID,
			&report.TargetType,
			&report.TargetID,
			&report.Reason,
			&report.Status,
			&report.ResolvedBy,
			&report.CreatedAt,
			&report.ResolvedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

func (r *reportRepository) Count(ctx context.Context, filter ReportFilter) (int64, error) {
	clauses, args := reportFilterClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM reports WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus, resolvedBy int64, resolvedAt time.Time) error {
	const query = `UPDATE reports SET status=$1, resolved_by=$2, resolved_at=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, status, resolvedBy, resolvedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func reportFilterClauses(filter ReportFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.TargetType != nil {
		args = append(args, *filter.TargetType)
		clauses = append(clauses, fmt.Sprintf("target_type=$%d", len(args)))
	}
	return clauses, args
}
