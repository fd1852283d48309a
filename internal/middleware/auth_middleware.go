package middleware

import (
	"strings"

	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"
	"tala-trivia/internal/logger"
	"tala-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	RoleKey             = "role"
)

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

// roleFromClaim keeps only known roles. Anything else is stored as the empty
// role, which is never admin and fails RequireRole.
func roleFromClaim(raw string) domain.Role {
	r := domain.Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Valid() {
		return ""
	}
	return r
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(AuthorizationHeader)
	if !strings.HasPrefix(authHeader, BearerSchema) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	return token, token != ""
}

// Protected is a middleware function that protects routes by requiring a valid JWT.
// It validates the token using the provided AuthService and sets the caller in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return unauthorized(c, string(domain.CodeUnauthorized), "Invalid or expired token")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, roleFromClaim(claims.Role))
		return c.Next()
	}
}

// OptionalAuth sets the caller when a valid access token is present and
// otherwise proceeds anonymously.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("OptionalAuth: JWT validation failed, proceeding as anonymous.", zap.Error(err))
			return c.Next()
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, roleFromClaim(claims.Role))
		return c.Next()
	}
}

// CallerFrom returns the authenticated caller, if any.
func CallerFrom(c *fiber.Ctx) (domain.Caller, bool) {
	userID, _ := c.Locals(UserIDKey).(string)
	if userID == "" {
		return domain.Caller{}, false
	}
	role, _ := c.Locals(RoleKey).(domain.Role)
	return domain.Caller{UserID: userID, Role: role}, true
}

// RequireRole rejects callers without the given role. A missing or unknown
// role is unauthorized; a known but different role is forbidden.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := CallerFrom(c)
		if !ok || !caller.Role.Valid() {
			return domain.NewUnauthorizedError("a valid role is required")
		}
		if caller.Role != role {
			return domain.NewForbiddenError("requires role " + string(role))
		}
		return c.Next()
	}
}
