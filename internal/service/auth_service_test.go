package service

import (
	"testing"

	"github.com/marcosalmeidaedp/bot-cliente/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func opsConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &config.Config{
		Ops: config.OpsConfig{
			JWTSecret:    "test-secret",
			Username:     "operador",
			PasswordHash: string(hash),
		},
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := NewAuthService(opsConfig(t, "s3nha"))

	res, err := svc.Login("operador", "s3nha")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "operador", claims["sub"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(opsConfig(t, "s3nha"))

	_, err := svc.Login("operador", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("intruso", "s3nha")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
