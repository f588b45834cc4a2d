package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cosolve/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO users (user_id, username, email, password_hash, avatar_url, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (:user_id, :username, :email, :password_hash, :avatar_url, :refresh_token, :refresh_token_expiry_time, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// GetAuthors returns the public projection of every listed user keyed by id.
func (r *userRepository) GetAuthors(ctx context.Context, userIDs []string) (map[string]models.Author, error) {
	authors := make(map[string]models.Author, len(userIDs))
	if len(userIDs) == 0 {
		return authors, nil
	}

	query, args, err := sqlx.In(`SELECT user_id, username, avatar_url FROM users WHERE user_id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build authors query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []models.Author
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}

	for _, author := range rows {
		authors[author.UserID] = author
	}

	return authors, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users SET
			refresh_token = $1,
			refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE refresh_token = $1`

	err := r.db.GetContext(ctx, &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by refresh token: %w", err)
	}

	return &user, nil
}

// AddBookmark inserts into the bookmark set without a prior read. The
// composite primary key plus ON CONFLICT DO NOTHING makes concurrent
// toggles safe: exactly one of two racing adds wins the insert.
func (r *userRepository) AddBookmark(ctx context.Context, userID, postID string) (bool, error) {
	query := `
		INSERT INTO bookmarks (user_id, post_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, userID, postID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted rows: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *userRepository) RemoveBookmark(ctx context.Context, userID, postID string) (bool, error) {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *userRepository) GetBookmarkedPostIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT post_id FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC`

	postIDs := []string{}
	if err := r.db.SelectContext(ctx, &postIDs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	return postIDs, nil
}
