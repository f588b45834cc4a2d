package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cosolve/internal/models"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

// commentRow is a comment joined with its author's public projection.
type commentRow struct {
	CommentID       string    `db:"comment_id"`
	PostID          string    `db:"post_id"`
	AuthorID        string    `db:"author_id"`
	Text            string    `db:"text"`
	CreatedAt       time.Time `db:"created_at"`
	AuthorUsername  string    `db:"author_username"`
	AuthorAvatarURL string    `db:"author_avatar_url"`
}

func (row commentRow) toModel() models.Comment {
	return models.Comment{
		CommentID: row.CommentID,
		PostID:    row.PostID,
		AuthorID:  row.AuthorID,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
		Author: &models.Author{
			UserID:    row.AuthorID,
			Username:  row.AuthorUsername,
			AvatarURL: row.AuthorAvatarURL,
		},
	}
}

const commentSelect = `
	SELECT c.comment_id, c.post_id, c.author_id, c.text, c.created_at,
	       u.username AS author_username, u.avatar_url AS author_avatar_url
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
`

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, author_id, text, created_at)
		VALUES (:comment_id, :post_id, :author_id, :text, :created_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := commentSelect + ` WHERE c.post_id = $1 ORDER BY c.created_at DESC`

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("failed to get post comments: %w", err)
	}

	comments := make([]models.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toModel())
	}

	return comments, nil
}

// GetByPostIDs returns the comments of every listed post keyed by post id,
// newest first within each post.
func (r *CommentRepositoryImpl) GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.Comment, error) {
	grouped := make(map[string][]models.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(commentSelect+` WHERE c.post_id IN (?) ORDER BY c.created_at DESC`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build comments query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	for _, row := range rows {
		grouped[row.PostID] = append(grouped[row.PostID], row.toModel())
	}

	return grouped, nil
}
