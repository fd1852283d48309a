package service

import (
	"context"
	"testing"
	"time"

	"tala-trivia/internal/config"
	"tala-trivia/internal/domain"
	"tala-trivia/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecretkeydontuseinproduction32bytes!"

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	auth, err := NewAuthService(config.JWTConfig{SecretKey: testSecret, Issuer: "tala-trivia", AccessTokenTTL: time.Hour})
	require.NoError(t, err)
	return auth
}

func signClaims(t *testing.T, claims dto.AuthClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestNewAuthService_ShortSecret(t *testing.T) {
	_, err := NewAuthService(config.JWTConfig{SecretKey: "short"})
	assert.Error(t, err)
}

func TestAuthService_CreateAndValidateJWT(t *testing.T) {
	auth := newTestAuthService(t)
	user := &domain.User{ID: "01HZX3Q8Y6W2K4N5M7P9R1T3V5", Role: domain.RoleAdmin}

	token, err := auth.CreateJWT(context.Background(), user, time.Minute)
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestAuthService_ValidateJWT_Rejects(t *testing.T) {
	auth := newTestAuthService(t)
	now := time.Now()
	valid := func() dto.AuthClaims {
		return dto.AuthClaims{
			UserID:    "user1",
			Role:      "player",
			TokenType: "access",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "tala-trivia",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{name: "garbage", token: func() string { return "not-a-jwt" }},
		{name: "wrong secret", token: func() string {
			return signClaims(t, valid(), "another-secret-another-secret-another")
		}},
		{name: "expired", token: func() string {
			c := valid()
			c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
			return signClaims(t, c, testSecret)
		}},
		{name: "refresh token", token: func() string {
			c := valid()
			c.TokenType = "refresh"
			return signClaims(t, c, testSecret)
		}},
		{name: "foreign issuer", token: func() string {
			c := valid()
			c.Issuer = "someone-else"
			return signClaims(t, c, testSecret)
		}},
		{name: "missing user id", token: func() string {
			c := valid()
			c.UserID = ""
			return signClaims(t, c, testSecret)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := auth.ValidateJWT(context.Background(), tt.token())
			assert.ErrorIs(t, err, ErrInvalidJWTToken)
			assert.Nil(t, claims)
		})
	}
}

func TestAuthService_Passwords(t *testing.T) {
	auth := newTestAuthService(t)

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, auth.CheckPassword(hash, "correct horse"))
	assert.False(t, auth.CheckPassword(hash, "battery staple"))
}
