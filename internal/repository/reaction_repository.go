package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/community-service/internal/domain"
)

// ReactionRepository encapsulates likes and bookmarks.
type ReactionRepository interface {
	AddLike(ctx context.Context, postID, userID int64) (bool, error)
	RemoveLike(ctx context.Context, postID, userID int64) (bool, error)
	HasLiked(ctx context.Context, postID, userID int64) (bool, error)
	AddBookmark(ctx context.Context, postID, userID int64) (bool, error)
	RemoveBookmark(ctx context.Context, postID, userID int64) (bool, error)
	ListBookmarkedPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error)
	CountBookmarks(ctx context.Context, userID int64) (int64, error)
}

type reactionRepository struct {
	pool *pgxpool.Pool
}

// NewReactionRepository instantiates repository.
func NewReactionRepository(pool *pgxpool.Pool) ReactionRepository {
	return &reactionRepository{pool: pool}
}

func (r *reactionRepository) AddLike(ctx context.Context, postID, userID int64) (bool, error) {
	const query = `
        INSERT INTO post_likes (post_id, user_id)
        VALUES ($1, $2) ON CONFLICT DO NOTHING`
	cmd, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *reactionRepository) RemoveLike(ctx context.Context, postID, userID int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM post_likes WHERE post_id=$1 AND user_id=$2`, postID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *reactionRepository) HasLiked(ctx context.Context, postID, userID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id=$1 AND user_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, postID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reactionRepository) AddBookmark(ctx context.Context, postID, userID int64) (bool, error) {
	const query = `
        INSERT INTO post_bookmarks (post_id, user_id)
        VALUES ($1, $2) ON CONFLICT DO NOTHING`
	cmd, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *reactionRepository) RemoveBookmark(ctx context.Context, postID, userID int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM post_bookmarks WHERE post_id=$1 AND user_id=$2`, postID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *reactionRepository) ListBookmarkedPosts(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
        SELECT p.id, p.public_id, p.author_id, p.category_id, p.title, p.content, p.status,
               p.scam_score, p.like_count, p.comment_count, p.created_at, p.updated_at
        FROM post_bookmarks b
        JOIN posts p ON p.id = b.post_id
        WHERE b.user_id=$1
        ORDER BY b.created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *reactionRepository) CountBookmarks(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM post_bookmarks WHERE user_id=$1`, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
