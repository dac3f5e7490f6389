package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *Issuer {
	return NewIssuer("access-secret", "refresh-secret", 2*time.Hour, 24*time.Hour)
}

func identity() Claims {
	return Claims{
		UserID:  "user-1",
		Email:   "a@b.com",
		Name:    "Alice",
		IsAdmin: true,
	}
}

func TestIssuer_AccessRoundTrip(t *testing.T) {
	iss := testIssuer()
	now := time.Now()

	signed, err := iss.NewAccessToken(identity(), now)
	require.NoError(t, err)

	claims, err := iss.ParseAccess(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, now.Add(2*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_RefreshRoundTrip(t *testing.T) {
	iss := testIssuer()
	now := time.Now()

	signed, err := iss.NewRefreshToken(identity(), now)
	require.NoError(t, err)

	claims, err := iss.ParseRefresh(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.WithinDuration(t, now.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestIssuer_SecretsAreNotInterchangeable(t *testing.T) {
	iss := testIssuer()

	access, err := iss.NewAccessToken(identity(), time.Now())
	require.NoError(t, err)

	// A refresh parse must not accept an access token and vice versa.
	_, err = iss.ParseRefresh(access)
	assert.Error(t, err)

	refresh, err := iss.NewRefreshToken(identity(), time.Now())
	require.NoError(t, err)

	_, err = iss.ParseAccess(refresh)
	assert.Error(t, err)
}

func TestIssuer_Expired(t *testing.T) {
	iss := testIssuer()

	// Sign far enough in the past that even the refresh TTL has elapsed.
	signed, err := iss.NewAccessToken(identity(), time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = iss.ParseAccess(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestIssuer_Garbage(t *testing.T) {
	iss := testIssuer()

	_, err := iss.ParseAccess("not-a-jwt")
	assert.Error(t, err)
}
