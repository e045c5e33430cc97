package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)

	svc := services.NewAuthService()

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login("ops@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("email compare ignores case", func(t *testing.T) {
		token, err := svc.Login("OPS@Example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("ops@example.com", "nope")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("intruder@example.com", "s3cret")
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}

func TestAuthService_Unconfigured(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	svc := services.NewAuthService()
	_, err := svc.Login("ops@example.com", "s3cret")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
