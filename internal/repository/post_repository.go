package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/community-service/internal/domain"
)

// PostFilter captures listing parameters for posts.
type PostFilter struct {
	AuthorID   *int64
	CategoryID *int64
	Statuses   []domain.PostStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// PostRepository encapsulates post persistence.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) error
	SetScamScore(ctx context.Context, id int64, score int) error
	AdjustLikeCount(ctx context.Context, id int64, delta int) error
	AdjustCommentCount(ctx context.Context, id int64, delta int) error
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository instantiates repository.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

const postColumns = `id, public_id, author_id, category_id, title, content, status,
               scam_score, like_count, comment_count, created_at, updated_at`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (public_id, author_id, category_id, title, content, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		post.PublicID,
		post.AuthorID,
		post.CategoryID,
		post.Title,
		post.Content,
		post.Status,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET category_id=$1, title=$2, content=$3, status=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		post.CategoryID,
		post.Title,
		post.Content,
		post.Status,
		post.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *postRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE public_id=$1`
	return r.fetchSingle(ctx, query, publicID)
}

func (r *postRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Post, error) {
	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&post.ID,
		&post.PublicID,
		&post.AuthorID,
		&post.CategoryID,
		&post.Title,
		&post.Content,
		&post.Status,
		&post.ScamScore,
		&post.LikeCount,
		&post.CommentCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	clauses, args := postFilterClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM posts WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		postColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	clauses, args := postFilterClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM posts WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) error {
	const query = `UPDATE posts SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) SetScamScore(ctx context.Context, id int64, score int) error {
	const query = `UPDATE posts SET scam_score=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, score, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) AdjustLikeCount(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE posts SET like_count = GREATEST(like_count + $1, 0) WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, delta, id)
	return err
}

func (r *postRepository) AdjustCommentCount(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE posts SET comment_count = GREATEST(comment_count + $1, 0) WHERE id=$2`
	_, err := r.pool.Exec(ctx, query, delta, id)
	return err
}

func postFilterClauses(filter PostFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		clauses = append(clauses, fmt.Sprintf("author_id=$%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(content) LIKE %s)", placeholder, placeholder))
	}
	return clauses, args
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var result []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.PublicID,
			&post.AuthorID,
			&post.CategoryID,
			&post.Title,
			&post.Content,
			&post.Status,
			&post.ScamScore,
			&post.LikeCount,
			&post.CommentCount,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}
