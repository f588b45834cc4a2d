package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"cosolve/internal/middleware"
	"cosolve/internal/models"
	"cosolve/internal/service"
)

type PostResponse struct {
	Message string       `json:"message"`
	Post    *models.Post `json:"post"`
	Success bool         `json:"success"`
}

type PostsResponse struct {
	Posts   []models.Post `json:"posts"`
	Success bool          `json:"success"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BookmarkResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeFailure(w, "Failed to parse request", http.StatusBadRequest)
		return
	}

	req := service.CreatePostRequest{
		AuthorID:    authorID,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Location:    r.FormValue("location"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		if !validImageUpload(header) {
			writeFailure(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
			return
		}
		req.Image = io.Reader(file)
	} else if err != http.ErrMissingFile {
		writeFailure(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Error adding new post")
		return
	}

	writeJSON(w, http.StatusCreated, PostResponse{
		Message: "New post added",
		Post:    post,
		Success: true,
	})
}

func validImageUpload(header *multipart.FileHeader) bool {
	return allowedImageTypes[header.Header.Get("Content-Type")]
}

func (h *Handlers) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching posts")
		return
	}

	writeJSON(w, http.StatusOK, PostsResponse{Posts: posts, Success: true})
}

func (h *Handlers) GetPostsByCategory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var location, status *string
	if v := query.Get("location"); v != "" {
		location = &v
	}
	if v := query.Get("status"); v != "" {
		status = &v
	}

	posts, err := h.PostService.ListByCategory(r.Context(), query.Get("category"), location, status)
	if err != nil {
		writeServiceError(w, err, "Error fetching posts")
		return
	}

	writeJSON(w, http.StatusOK, PostsResponse{Posts: posts, Success: true})
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.ListByAuthor(r.Context(), authorID)
	if err != nil {
		writeServiceError(w, err, "Error fetching posts")
		return
	}

	writeJSON(w, http.StatusOK, PostsResponse{Posts: posts, Success: true})
}

// GetUserPosts serves another user's posts. Same operation as GetMyPosts
// with the author taken from the path instead of the principal.
func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["id"]

	posts, err := h.PostService.ListByAuthor(r.Context(), authorID)
	if err != nil {
		writeServiceError(w, err, "Error fetching posts")
		return
	}

	writeJSON(w, http.StatusOK, PostsResponse{Posts: posts, Success: true})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID, actingUserID); err != nil {
		writeServiceError(w, err, "Error deleting post")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Post deleted"})
}

func (h *Handlers) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	result, err := h.PostService.ToggleBookmark(r.Context(), userID, postID)
	if err != nil {
		writeServiceError(w, err, "Error bookmarking post")
		return
	}

	message := "Post bookmarked"
	if result == service.BookmarkUnsaved {
		message = "Post removed from bookmark"
	}

	writeJSON(w, http.StatusOK, BookmarkResponse{
		Type:    string(result),
		Message: message,
		Success: true,
	})
}

func (h *Handlers) SetPostStatus(w http.ResponseWriter, r *http.Request) {
	actingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeFailure(w, "Invalid status", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.SetStatus(r.Context(), postID, req.Status, actingUserID)
	if err != nil {
		writeServiceError(w, err, "Error updating post status")
		return
	}

	writeJSON(w, http.StatusOK, PostResponse{
		Message: "Post status updated successfully",
		Post:    post,
		Success: true,
	})
}
