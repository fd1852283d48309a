package service

import (
	"context"
	"fmt"
	"strings"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/logger"
	"tala-trivia/internal/util"

	"go.uber.org/zap"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// CreateUser registers a user. caller is nil for anonymous registration.
	CreateUser(ctx context.Context, caller *domain.Caller, req dto.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int, error)
	UpdateUser(ctx context.Context, caller domain.Caller, id string, req dto.UpdateUserRequest) (*domain.User, error)
}

type userServiceImpl struct {
	userRepo domain.UserRepository
	auth     AuthService
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, auth AuthService) UserService {
	return &userServiceImpl{userRepo: userRepo, auth: auth}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, caller *domain.Caller, req dto.CreateUserRequest) (*domain.User, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if role.IsAdmin() && (caller == nil || !caller.Role.IsAdmin()) {
		return nil, domain.NewForbiddenError("only admins can create admin users")
	}

	user := domain.NewUser(req.Username, req.Email, req.Name, role)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	user.ID = util.NewULID()
	if user.PasswordHash, err = s.auth.HashPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	logger.Get().Info("User created", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, page domain.Pagination) ([]domain.User, int, error) {
	users, total, err := s.userRepo.ListUsers(ctx, page)
	if err != nil {
		return nil, 0, domain.NewInternalError("failed to list users", err)
	}
	return users, total, nil
}

// UpdateUser applies name, password and role changes. Username and email are
// immutable; resending the current value is accepted.
func (s *userServiceImpl) UpdateUser(ctx context.Context, caller domain.Caller, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	if !caller.CanActFor(id) {
		return nil, domain.NewForbiddenError("cannot modify another user")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	var errs domain.ValidationErrors
	if req.Username != nil && strings.TrimSpace(*req.Username) != user.Username {
		errs = append(errs, domain.FieldError{Field: "username", Message: "cannot be changed"})
	}
	if req.Email != nil && !strings.EqualFold(strings.TrimSpace(*req.Email), user.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "cannot be changed"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		if role != user.Role && !caller.Role.IsAdmin() {
			return nil, domain.NewForbiddenError("only admins can change roles")
		}
		user.Role = role
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		if !caller.Role.IsAdmin() {
			if req.CurrentPassword == nil || !s.auth.CheckPassword(user.PasswordHash, *req.CurrentPassword) {
				return nil, domain.NewFieldError("current_password", "is incorrect")
			}
		}
		if user.PasswordHash, err = s.auth.HashPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
