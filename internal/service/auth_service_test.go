package service

import (
	"context"
	"testing"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/config"
	"github.com/newstarted0004/surti-khaman/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthConfig(t *testing.T, pin string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		AccessPINHash:      string(hash),
		JWTSecret:          "test-secret",
		JWTExpirationHours: 12,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	cfg := newAuthConfig(t, "1813")
	svc := NewAuthService(cfg, nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "1813"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 12*3600, resp.ExpiresIn)

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, tok.Valid)
	assert.Equal(t, "owner", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	svc := NewAuthService(newAuthConfig(t, "1813"), nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "0000"})
	require.Error(t, err)
}

func TestLoginFailsWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "x"}, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "1813"})
	require.Error(t, err)
}

func TestLogoutSkipsExpiredToken(t *testing.T) {
	svc := NewAuthService(newAuthConfig(t, "1813"), nil)

	// An already-expired token needs no denylist entry.
	err := svc.Logout(context.Background(), "some-jti", time.Now().Add(-time.Minute))
	require.NoError(t, err)
}
