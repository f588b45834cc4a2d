package service

import (
	"context"
	"strings"

	"cosolve/internal/models"
	"cosolve/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, text, authorID string) (*models.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository,
	userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, postID, text, authorID string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyCommentText
	}

	// The post must exist before the comment is written, otherwise the
	// comment would be orphaned.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetAuthors(ctx, []string{authorID})
	if err != nil {
		return nil, err
	}
	if author, ok := authors[authorID]; ok {
		comment.Author = &author
	}

	return comment, nil
}

// ListForPost returns the post's comments newest first. A missing or
// comment-less post yields an empty list, not an error.
func (s *commentService) ListForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}
