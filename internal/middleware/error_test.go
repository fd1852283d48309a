package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewFieldError("name", "is required"), 400},
		{domain.NewNotFoundError("missing"), 404},
		{domain.NewParticipationNotFoundError("u1", 1), 404},
		{domain.NewDataIntegrityError("bad"), 409},
		{domain.NewDuplicateAnswerError(1, 2), 409},
		{domain.NewUnauthorizedError("who"), 401},
		{domain.NewForbiddenError("no"), 403},
		{domain.NewInternalError("boom", errors.New("db")), 500},
		{fiber.ErrMethodNotAllowed, 405},
		{errors.New("plain"), 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), tt.err.Error())
	}
}

func TestErrorHandler_Bodies(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{{Field: "options", Message: "exactly one option must be correct"}}
	})
	app.Get("/duplicate", func(c *fiber.Ctx) error {
		return domain.NewDuplicateAnswerError(4, 7)
	})
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return errors.Join(errors.New("context"), domain.NewNotFoundError("trivia 3 not found"))
	})
	app.Get("/panic-free", func(c *fiber.Ctx) error {
		return errors.New("unexpected")
	})

	t.Run("validation", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/validation", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "options", body.Errors[0].Field)
	})

	t.Run("duplicate answer", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/duplicate", nil))
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "DUPLICATE_ANSWER", body["code"])
		details := body["details"].(map[string]interface{})
		assert.Equal(t, float64(4), details["question_id"])
	})

	t.Run("wrapped domain error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/wrapped", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/panic-free", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body.Message)
	})
}

func TestValidateIDParam(t *testing.T) {
	vm := NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/trivias/:id", vm.ValidateIDParam("id"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": IDParam(c, "id")})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/trivias/42", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	for _, bad := range []string{"abc", "0", "-3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/trivias/"+bad, nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, bad)
	}
}
