package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/community-service/internal/domain"
)

// StatsRepository aggregates dashboard counters.
type StatsRepository interface {
	Collect(ctx context.Context) (*domain.Statistics, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Collect(ctx context.Context) (*domain.Statistics, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM users WHERE status='ACTIVE'),
            (SELECT COUNT(*) FROM users WHERE status='SUSPENDED'),
            (SELECT COUNT(*) FROM posts),
            (SELECT COUNT(*) FROM posts WHERE status='HIDDEN'),
            (SELECT COUNT(*) FROM comments),
            (SELECT COUNT(*) FROM reports WHERE status='OPEN')`

	var stats domain.Statistics
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.ActiveUsers,
		&stats.SuspendedUsers,
		&stats.TotalPosts,
		&stats.HiddenPosts,
		&stats.TotalComments,
		&stats.OpenReports,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
