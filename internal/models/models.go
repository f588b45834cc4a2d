package models

import (
	"time"
)

// Post categories. Category is validated on every write path.
const (
	CategoryTransport = "Transport"
	CategoryRental    = "Rental"
	CategorySkills    = "Skills"
)

// Post lifecycle statuses.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryTransport, CategoryRental, CategorySkills:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	AvatarURL              string    `json:"avatarUrl" db:"avatar_url"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

// Author is the public-safe projection of a User embedded in posts and
// comments: identity and avatar only, never credentials.
type Author struct {
	UserID    string `json:"userId" db:"user_id"`
	Username  string `json:"username" db:"username"`
	AvatarURL string `json:"avatarUrl" db:"avatar_url"`
}

type Post struct {
	PostID      string    `json:"postId" db:"post_id"`
	AuthorID    string    `json:"-" db:"author_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       *string   `json:"image" db:"image_url"`
	Category    string    `json:"category" db:"category"`
	Location    string    `json:"location" db:"location"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Author      *Author   `json:"author,omitempty" db:"-"`
	Comments    []Comment `json:"comments" db:"-"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"-" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    *Author   `json:"author,omitempty" db:"-"`
}
