package handlers

import (
	"errors"
	"net/http"

	"cosolve/internal/models"
	"cosolve/internal/service"
)

type AuthResponse struct {
	Message      string       `json:"message"`
	User         *models.User `json:"user,omitempty"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	Success      bool         `json:"success"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeFailure(w, "Some fields Are Missing", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeFailure(w, "Email already registered", http.StatusBadRequest)
			return
		}
		writeServiceError(w, err, "Error registering user")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "Account created successfully",
		User:    user,
		Success: true,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeFailure(w, "Some fields Are Missing", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeFailure(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, err, "Error logging in")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message:      "Welcome back " + user.Username,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Success:      true,
	})
}

// Logout exists for client symmetry. Bearer tokens carry no server-side
// session, so there is nothing to clear.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Logged out successfully"})
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeFailure(w, "Some fields Are Missing", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeFailure(w, "Invalid refresh token", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, err, "Error refreshing token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message:      "Token refreshed",
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Success:      true,
	})
}
