package utils

import (
	"testing"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"

	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:     []byte("test-secret"),
		Issuer:        "moneynow",
		SessionTTL:    7 * 24 * time.Hour,
		RememberMeTTL: 30 * 24 * time.Hour,
	}
}

func testUser() models.User {
	user := models.User{Name: "Ana", Email: "ana@x.com"}
	user.ID = 42
	return user
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	signed, claims, err := issuer.Issue(testUser(), false)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "ana@x.com", claims.Email)

	parsed, err := issuer.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, uint(42), parsed.UserID)
	require.Equal(t, "ana@x.com", parsed.Email)
}

func TestTokenIssuerRememberMeExtendsExpiry(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())

	_, short, err := issuer.Issue(testUser(), false)
	require.NoError(t, err)
	_, long, err := issuer.Issue(testUser(), true)
	require.NoError(t, err)

	require.True(t, long.ExpiresAt.After(short.ExpiresAt.Time),
		"remember-me token must expire later than the default session token")
}

func TestTokenIssuerRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testJWTConfig())
	signed, _, err := issuer.Issue(testUser(), false)
	require.NoError(t, err)

	other := testJWTConfig()
	other.SecretKey = []byte("different-secret")
	_, err = NewTokenIssuer(other).Verify(signed)
	require.Error(t, err)
}

func TestTokenIssuerRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SessionTTL = -time.Minute
	signed, _, err := NewTokenIssuer(cfg).Issue(testUser(), false)
	require.NoError(t, err)

	_, err = NewTokenIssuer(testJWTConfig()).Verify(signed)
	require.Error(t, err)
}

func TestTokenIssuerRejectsEmptyToken(t *testing.T) {
	_, err := NewTokenIssuer(testJWTConfig()).Verify("  ")
	require.Error(t, err)
}
