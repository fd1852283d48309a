package middleware

import (
	"strconv"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware checks path parameters before handlers run.
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// Validator exposes the shared struct validator to handlers.
func (vm *ValidationMiddleware) Validator() *validation.Validator {
	return vm.validator
}

// ValidateIDParam requires param to be a positive integer and stores it in
// locals under the same name.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domain.ValidationErrors{domain.NewInvalidFormatError(param, raw)}
		}
		c.Locals(param, id)
		return c.Next()
	}
}

// ValidateULIDParam requires param to be a ULID.
func (vm *ValidationMiddleware) ValidateULIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		if !validation.IsValidULID(raw) {
			return domain.ValidationErrors{domain.NewInvalidFormatError(param, raw)}
		}
		return c.Next()
	}
}

// IDParam reads an id stored by ValidateIDParam.
func IDParam(c *fiber.Ctx, param string) int64 {
	id, _ := c.Locals(param).(int64)
	return id
}
