package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"cosolve/internal/middleware"
	"cosolve/internal/models"
)

type CommentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
	Success bool            `json:"success"`
}

type CommentsResponse struct {
	Success  bool             `json:"success"`
	Comments []models.Comment `json:"comments"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), postID, req.Text, authorID)
	if err != nil {
		writeServiceError(w, err, "Error adding comment")
		return
	}

	writeJSON(w, http.StatusCreated, CommentResponse{
		Message: "Comment Added",
		Comment: comment,
		Success: true,
	})
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := h.CommentService.ListForPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err, "Error fetching comments")
		return
	}

	writeJSON(w, http.StatusOK, CommentsResponse{Success: true, Comments: comments})
}
