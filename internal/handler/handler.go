package handlers

import (
	"github.com/go-playground/validator/v10"

	"cosolve/internal/config"
	"cosolve/internal/database"
	"cosolve/internal/service"
)

type Handlers struct {
	PostService    service.PostService
	CommentService service.CommentService
	AuthService    service.AuthService
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		PostService:    services.Post,
		CommentService: services.Comment,
		AuthService:    services.Auth,
		DB:             db,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}
