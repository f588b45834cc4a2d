package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cosolve/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// ListPostsParams is the filter resolved into a single query at the
// repository boundary. Nil fields are not filtered on.
type ListPostsParams struct {
	Category *string
	Location *string
	Status   *string
	AuthorID *string
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(post_id, author_id, title, description, image_url, category, location, status, created_at, updated_at)
		VALUES
		(:post_id, :author_id, :title, :description, :image_url, :category, :location, :status, :created_at, :updated_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Status == "" {
		post.Status = models.StatusOpen
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) List(ctx context.Context, params ListPostsParams) ([]models.Post, error) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if params.Category != nil {
		args = append(args, *params.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if params.Location != nil {
		args = append(args, *params.Location)
		conditions = append(conditions, fmt.Sprintf("location = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.AuthorID != nil {
		args = append(args, *params.AuthorID)
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", len(args)))
	}

	query := `SELECT * FROM posts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error) {
	query := `
		UPDATE posts SET
			status = $1,
			updated_at = $2
		WHERE post_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), postID)
	if err != nil {
		return nil, fmt.Errorf("failed to update post status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, postID)
}

// Delete removes the post and its dependent comments and bookmarks as a
// single transaction. The ON DELETE CASCADE constraints in the schema are
// the backstop; the explicit deletes keep the unit of work visible.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post bookmarks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post deletion: %w", err)
	}

	return nil
}
