package service

import (
	"crypto/subtle"

	"github.com/chaatcart/kiosk-api/pkg/apperror"
	"github.com/chaatcart/kiosk-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single admin credential and issues session
// tokens for the dashboard
type AuthService struct {
	jwtManager   *utils.JWTManager
	passwordHash string
	password     string
}

// NewAuthService creates a new auth service. passwordHash is a bcrypt hash
// and takes precedence; the plain password is a development fallback.
func NewAuthService(jwtManager *utils.JWTManager, passwordHash, password string) *AuthService {
	return &AuthService{
		jwtManager:   jwtManager,
		passwordHash: passwordHash,
		password:     password,
	}
}

// Login verifies the admin password and returns a session token
func (s *AuthService) Login(password string) (string, error) {
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return "", apperror.ErrInvalidCredentials
		}
	} else if s.password == "" ||
		subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAdminToken()
	if err != nil {
		return "", err
	}
	return token, nil
}
