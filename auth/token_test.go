package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", DefaultTokenTTL)
	assert.Error(t, err)

	issuer, err := NewTokenIssuer(testSecret, 0)
	require.NoError(t, err)
	assert.NotNil(t, issuer)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)

	token, err := issuer.Issue("user-1", "jo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)

	expired := signedToken(t, testSecret, time.Now().Add(-time.Hour))

	_, err = issuer.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)

	token, err := issuer.Issue("user-1", "jo@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)

	foreign := signedToken(t, "some-other-secret", time.Now().Add(time.Hour))

	_, err = issuer.Verify(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, DefaultTokenTTL)
	require.NoError(t, err)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := Claims{
		UserID: "user-1",
		Email:  "jo@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
