package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, sub string, exp time.Time) string {
	t.Helper()
	claims := AccessClaims{
		Email: sub + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestTokenVerifier(t *testing.T) {
	assert.Nil(t, NewTokenVerifier(""))

	v := NewTokenVerifier("s3cret")

	u, err := v.Verify(signToken(t, "s3cret", "u1", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "u1@example.com", u.Email)

	_, err = v.Verify(signToken(t, "s3cret", "u1", time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = v.Verify(signToken(t, "other", "u1", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUser_AvatarURL(t *testing.T) {
	var nilUser *User
	assert.Empty(t, nilUser.AvatarURL())

	u := &User{UserMetadata: map[string]interface{}{"picture": "https://cdn.test/p.png"}}
	assert.Equal(t, "https://cdn.test/p.png", u.AvatarURL())

	u.UserMetadata["avatar_url"] = "https://cdn.test/a.png"
	assert.Equal(t, "https://cdn.test/a.png", u.AvatarURL())

	u.UserMetadata = map[string]interface{}{"avatar_url": 42}
	assert.Empty(t, u.AvatarURL())
}
