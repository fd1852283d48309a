package handler

import (
	"strconv"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/middleware"
	"tala-trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// parsePagination reads limit and page. Limits above maxLimit are clamped.
func parsePagination(c *fiber.Ctx) (domain.Pagination, int, error) {
	limit, page := defaultLimit, 1
	var errs domain.ValidationErrors
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, domain.NewInvalidFormatError("limit", raw))
		} else {
			limit = min(n, maxLimit)
		}
	}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, domain.NewInvalidFormatError("page", raw))
		} else {
			page = n
		}
	}
	if len(errs) > 0 {
		return domain.Pagination{}, 0, errs
	}
	return domain.Pagination{Limit: limit, Offset: (page - 1) * limit}, page, nil
}

func listResponse[T any](items []T, total, page int, p domain.Pagination) dto.ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return dto.ListResponse[T]{Items: items, Total: total, Page: page, Limit: p.Limit}
}

// bind parses the JSON body into dst and runs struct validation.
func bind(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewFieldError("body", "must be a valid JSON object")
	}
	return v.Validate(dst)
}

// caller returns the authenticated caller. Routes using it sit behind
// middleware.Protected, so a missing caller is a wiring error.
func caller(c *fiber.Ctx) (domain.Caller, error) {
	cl, ok := middleware.CallerFrom(c)
	if !ok {
		return domain.Caller{}, domain.NewUnauthorizedError("authentication required")
	}
	return cl, nil
}

func isAdmin(c *fiber.Ctx) bool {
	cl, ok := middleware.CallerFrom(c)
	return ok && cl.Role.IsAdmin()
}
