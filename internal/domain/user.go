package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"
)

const MaxUsernameLength = 12

// User represents an account that can authenticate and take part in trivias.
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User instance
func NewUser(username, email, name string, role Role) *User {
	now := time.Now()
	return &User{
		Username:  strings.TrimSpace(username),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	var errs ValidationErrors
	switch {
	case u.Username == "":
		errs = append(errs, NewMissingFieldError("username"))
	case len(u.Username) > MaxUsernameLength:
		errs = append(errs, FieldError{Field: "username", Message: "must be at most 12 characters"})
	}
	if u.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		errs = append(errs, NewInvalidFormatError("email", u.Email))
	}
	if !u.Role.Valid() {
		errs = append(errs, FieldError{Field: "role", Message: "must be one of: player, admin"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Entity is a generic profile record optionally linked to a User.
type Entity struct {
	ID        string
	Name      string
	Email     string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player is a role-carrying profile attached to exactly one Entity.
type Player struct {
	ID        string
	Role      Role
	Entity    Entity
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Player) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Entity.Name) == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if p.Entity.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(p.Entity.Email); err != nil {
		errs = append(errs, NewInvalidFormatError("email", p.Entity.Email))
	}
	if !p.Role.Valid() {
		errs = append(errs, FieldError{Field: "role", Message: "must be one of: player, admin"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
// Getters return (nil, nil) when the row does not exist.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context, page Pagination) ([]User, int, error)
	UpdateUser(ctx context.Context, user *User) error
}

// PlayerRepository persists players together with their entity profile.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *Player) error
	GetPlayerByID(ctx context.Context, id string) (*Player, error)
	ListPlayers(ctx context.Context, page Pagination) ([]Player, int, error)
	UpdatePlayer(ctx context.Context, player *Player) error
}
