package dto

import (
	"time"

	"tala-trivia/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // only "access" is accepted
	jwt.RegisteredClaims
}

// CreateUserRequest is the body of POST /users.
// @Description Request body for registering a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=12"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,role"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Absent fields are left
// unchanged; username and email may only be resent with their current value.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,role"`
	// CurrentPassword is required when users change their own password.
	CurrentPassword *string `json:"current_password,omitempty"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// CreatePlayerRequest creates an Entity profile and its Player.
type CreatePlayerRequest struct {
	Name   string `json:"name" validate:"required,max=150"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Role   string `json:"role" validate:"omitempty,role"`
	UserID string `json:"user_id" validate:"omitempty,ulid"`
}

type UpdatePlayerRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Role  *string `json:"role,omitempty" validate:"omitempty,role"`
}

type EntityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"user_id,omitempty"`
}

type PlayerResponse struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Entity    EntityResponse `json:"entity"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:   p.ID,
		Role: string(p.Role),
		Entity: EntityResponse{
			ID:     p.Entity.ID,
			Name:   p.Entity.Name,
			Email:  p.Entity.Email,
			UserID: p.Entity.UserID,
		},
		CreatedAt: p.CreatedAt,
	}
}
