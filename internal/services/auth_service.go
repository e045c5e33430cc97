package services

import (
	"os"
	"strings"

	"tripwise/pkg/utils"
)

type AuthServiceInterface interface {
	Login(email string, password string) (string, error)
}

// authService checks credentials against the env-configured admin account.
// There is no user table; the dashboard is an internal surface with a single
// operator login.
type authService struct{}

func NewAuthService() AuthServiceInterface {
	return &authService{}
}

func (a *authService) Login(email string, password string) (string, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		return "", utils.ErrInvalidCredentials
	}

	if !strings.EqualFold(strings.TrimSpace(email), adminEmail) {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(adminHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(adminEmail, "admin")
	if err != nil {
		return "", err
	}
	return token, nil
}
