package service

import (
	"cosolve/internal/config"
	"cosolve/internal/repository"
	"cosolve/internal/storage"
)

type Service struct {
	Post    PostService
	Comment CommentService
	Auth    AuthService
	Image   ImageService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	imageService := NewImageService(storage, cfg)

	return &Service{
		Post:    NewPostService(repo.Post, repo.Comment, repo.User, imageService, storage),
		Comment: NewCommentService(repo.Comment, repo.Post, repo.User),
		Auth:    NewAuthService(repo.User, cfg),
		Image:   imageService,
	}
}
