package handler

import (
	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/service"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
	validator   *validation.Validator
}

func NewUserHandler(userService service.UserService, v *validation.Validator) *UserHandler {
	return &UserHandler{userService: userService, validator: v}
}

// ListUsers lists registered users.
// @Summary List users
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Page size (max 200)"
// @Param page query int false "Page number"
// @Success 200 {object} dto.ListResponse[dto.UserResponse]
// @Failure 401 {object} dto.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	p, page, err := parsePagination(c)
	if err != nil {
		return err
	}
	users, total, err := h.userService.ListUsers(c.UserContext(), p)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(listResponse(items, total, page, p))
}

// CreateUser registers a user. Creating an admin requires an admin token.
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	var cl *domain.Caller
	if current, ok := middleware.CallerFrom(c); ok {
		cl = &current
	}
	user, err := h.userService.CreateUser(c.UserContext(), cl, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// GetUser
// @Summary Get user
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "User ULID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// UpdateUser changes name, password or role. Username and email are immutable.
// @Summary Update user
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "User ULID"
// @Param request body dto.UpdateUserRequest true "Changes"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	cl, err := caller(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := bind(c, h.validator, &req); err != nil {
		return err
	}
	user, err := h.userService.UpdateUser(c.UserContext(), cl, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}
