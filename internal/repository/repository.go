package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"cosolve/internal/models"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAuthors(ctx context.Context, userIDs []string) (map[string]models.Author, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)

	// AddBookmark is an atomic set-add: it reports false when the bookmark
	// was already present. RemoveBookmark is the matching set-remove.
	AddBookmark(ctx context.Context, userID, postID string) (bool, error)
	RemoveBookmark(ctx context.Context, userID, postID string) (bool, error)
	GetBookmarkedPostIDs(ctx context.Context, userID string) ([]string, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, params ListPostsParams) ([]models.Post, error)
	UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}
