package service

import (
	"errors"
	"time"

	"github.com/marcosalmeidaedp/bot-cliente/internal/config"
	"github.com/marcosalmeidaedp/bot-cliente/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthService authenticates operators of the ops API. There is a single
// operator identity, configured via environment (username + bcrypt hash).
type IAuthService interface {
	Login(username, password string) (*dto.LoginResponse, error)
}

type authService struct {
	ops       config.OpsConfig
	jwtSecret []byte
}

func NewAuthService(cfg *config.Config) IAuthService {
	return &authService{
		ops:       cfg.Ops,
		jwtSecret: []byte(cfg.Ops.JWTSecret),
	}
}

func (s *authService) Login(username, password string) (*dto.LoginResponse, error) {
	if username != s.ops.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.ops.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}
