package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"cosolve/cmd/app"
	"cosolve/internal/config"
	handlers "cosolve/internal/handler"
	"cosolve/internal/middleware"
	"cosolve/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logrus.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := setupRouter(handler, services)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	logrus.WithField("addr", addr).Info("starting server")

	if err := server.ListenAndServe(); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}

func setupRouter(handler *handlers.Handlers, services *service.Service) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)
	router.Use(middleware.CORS)

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	user.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	user.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)
	user.HandleFunc("/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	post := api.PathPrefix("/post").Subrouter()
	post.Use(middleware.Auth(services.Auth))
	post.HandleFunc("/addpost", handler.CreatePost).Methods(http.MethodPost)
	post.HandleFunc("/all", handler.GetAllPosts).Methods(http.MethodGet)
	post.HandleFunc("/category", handler.GetPostsByCategory).Methods(http.MethodGet)
	post.HandleFunc("/my", handler.GetMyPosts).Methods(http.MethodGet)
	post.HandleFunc("/user/{id}", handler.GetUserPosts).Methods(http.MethodGet)
	post.HandleFunc("/{id}/comment", handler.AddComment).Methods(http.MethodPost)
	post.HandleFunc("/{id}/comment/all", handler.GetPostComments).Methods(http.MethodGet)
	post.HandleFunc("/{id}/bookmark", handler.ToggleBookmark).Methods(http.MethodGet)
	post.HandleFunc("/{id}/status", handler.SetPostStatus).Methods(http.MethodPatch)
	post.HandleFunc("/{id}", handler.DeletePost).Methods(http.MethodDelete)

	return router
}
