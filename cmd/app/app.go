package app

import (
	"github.com/sirupsen/logrus"

	"cosolve/internal/config"
	"cosolve/internal/database"
	"cosolve/internal/repository"
	"cosolve/internal/service"
	"cosolve/internal/storage"
)

// App assembles the dependency graph: database, object storage,
// repositories and services.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize MinIO")
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
