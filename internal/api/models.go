package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskify/taskify-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse carries the public user fields. The password hash is never
// part of any response.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required,min=1"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"       validate:"required,min=1"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	CategoryID  *uuid.UUID `json:"category_id"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Nil fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=todo in_progress completed"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	CategoryID  *uuid.UUID `json:"category_id"`
	DueDate     *time.Time `json:"due_date"`
}

// userToResponse converts a domain.User to its public representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
