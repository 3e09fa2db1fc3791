package auth

import (
	"testing"
	"time"

	"celobuddy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, exp, err := m.GenerateToken("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenManager_RejectsForeignSecretAndExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("passw0rd!")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("passw0rd!", hash))
	assert.False(t, CheckPasswordHash("password", hash))

	assert.NoError(t, ValidatePassword("abcdefg1"))
	assert.ErrorIs(t, ValidatePassword("short1"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("lettersonly"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword("12345678"), ErrWeakPassword)
}

func TestCapabilities(t *testing.T) {
	assert.True(t, Can(models.UserRoleAdmin, CapOpportunitiesWrite))
	assert.True(t, Can(models.UserRoleAdmin, CapDataExport))
	assert.False(t, Can(models.UserRoleUser, CapOpportunitiesWrite))
	assert.False(t, Can(models.UserRoleUser, CapAnalyticsRead))
	assert.True(t, Can(models.UserRoleUser, CapFeedRead))
	assert.False(t, Can("", CapFeedRead))

	assert.True(t, ServiceCan(CapOpportunitiesWrite))
	assert.False(t, ServiceCan(CapAnalyticsRead))
}
