package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, err := mgr.GenerateAdminToken()
	require.NoError(t, err)

	claims, err := mgr.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "kiosk-api", claims.Issuer)
}

func TestAdminTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateAdminToken()
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ValidateAdminToken(token)
	require.Error(t, err)
}

func TestAdminTokenExpired(t *testing.T) {
	mgr := NewJWTManager("secret", -time.Minute)

	token, err := mgr.GenerateAdminToken()
	require.NoError(t, err)

	_, err = mgr.ValidateAdminToken(token)
	require.Error(t, err)
}

func TestAdminTokenGarbage(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	_, err := mgr.ValidateAdminToken("not-a-token")
	require.Error(t, err)
}
