// pkg/auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hs256"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Minute)
}

func TestTokenManager_Validate_WrongSecret(t *testing.T) {
	tm, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	other, err := NewTokenManager("another-secret-key-that-is-also-long-enough", time.Hour)
	require.NoError(t, err)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Validate(token)
	require.Error(t, err)
}

func TestTokenManager_Validate_Expired(t *testing.T) {
	tm, err := NewTokenManager(testSecret, -time.Minute)
	require.NoError(t, err)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	require.Error(t, err)
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	require.Error(t, err)
}
