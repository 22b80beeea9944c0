package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/community-service/internal/domain"
)

// ConfigRepository encapsulates the system configuration key/value store.
type ConfigRepository interface {
	Upsert(ctx context.Context, entry *domain.ConfigEntry) error
	Get(ctx context.Context, key string) (*domain.ConfigEntry, error)
	List(ctx context.Context) ([]domain.ConfigEntry, error)
}

type configRepository struct {
	pool *pgxpool.Pool
}

// NewConfigRepository instantiates repository.
func NewConfigRepository(pool *pgxpool.Pool) ConfigRepository {
	return &configRepository{pool: pool}
}

func (r *configRepository) Upsert(ctx context.Context, entry *domain.ConfigEntry) error {
	const query = `
        INSERT INTO system_config (key, value, updated_by)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_by=EXCLUDED.updated_by, updated_at=NOW()
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		entry.Key,
		entry.Value,
		entry.UpdatedBy,
	).Scan(&entry.UpdatedAt)
}

func (r *configRepository) Get(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	const query = `
        SELECT key, value, updated_by, updated_at
        FROM system_config WHERE key=$1`
	var entry domain.ConfigEntry
	if err := r.pool.QueryRow(ctx, query, key).Scan(
		&entry.Key,
		&entry.Value,
		&entry.UpdatedBy,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *configRepository) List(ctx context.Context) ([]domain.ConfigEntry, error) {
	const query = `
        SELECT key, value, updated_by, updated_at
        FROM system_config ORDER BY key ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ConfigEntry
	for rows.Next() {
		var entry domain.ConfigEntry
		if err := rows.Scan(
			&entry.Key,
			&entry.Value,
			&entry.UpdatedBy,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
