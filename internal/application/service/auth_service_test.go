package service

import (
	"testing"
	"time"

	"github.com/chaatcart/kiosk-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", time.Hour)
}

func TestLoginWithPlainPassword(t *testing.T) {
	svc := NewAuthService(testJWTManager(), "", "hunter2")

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("wrong")
	require.Error(t, err)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	// The hash takes precedence over any configured plain password
	svc := NewAuthService(testJWTManager(), string(hash), "other")

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("other")
	require.Error(t, err)
}

func TestLoginRejectsEmptyConfiguration(t *testing.T) {
	svc := NewAuthService(testJWTManager(), "", "")

	_, err := svc.Login("")
	require.Error(t, err)
}

func TestLoginTokenValidates(t *testing.T) {
	mgr := testJWTManager()
	svc := NewAuthService(mgr, "", "hunter2")

	token, err := svc.Login("hunter2")
	require.NoError(t, err)

	claims, err := mgr.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}
