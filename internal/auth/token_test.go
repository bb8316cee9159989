package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/auth-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "u1",
		Email:    "ana@medcore.test",
		Fullname: "Ana García",
		Role:     domain.RoleDoctor,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("testsecret", time.Hour)

	tokenStr, expiresAt, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "ana@medcore.test", claims.Email)
	assert.Equal(t, "Ana García", claims.Fullname)
	assert.Equal(t, domain.RoleDoctor, claims.Role)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("testsecret", -time.Minute)
	// negative TTL falls back to the default, so sign an expired one directly
	tm.ttl = -time.Minute

	tokenStr, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = tm.ParseToken(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	tokenStr, _, err := NewTokenManager("testsecret", time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("othersecret", time.Hour).ParseToken(tokenStr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("testsecret", time.Hour)

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = tm.ParseToken("")
	assert.Error(t, err)
}
