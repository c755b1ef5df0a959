package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mdchat/internal/infrastructure/config"
)

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier(config.AuthConfig{JWTSecret: "test-secret", Issuer: "mdchat", TokenTTL: time.Hour})
	require.NoError(t, err)
	return v
}

func TestNewVerifier_MissingSecret(t *testing.T) {
	v, err := NewVerifier(config.AuthConfig{})

	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, v)
}

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := newTestVerifier(t)

	token, err := v.Issue("ci-bot", 0)
	require.NoError(t, err)

	principal, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ci-bot", principal.Subject)
	assert.NotEmpty(t, principal.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), principal.ExpiresAt, time.Minute)
}

func TestVerifier_Verify_Rejects(t *testing.T) {
	v := newTestVerifier(t)

	other, err := NewVerifier(config.AuthConfig{JWTSecret: "other-secret", Issuer: "mdchat"})
	require.NoError(t, err)
	foreign, err := other.Issue("intruder", time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := NewVerifier(config.AuthConfig{JWTSecret: "test-secret", Issuer: "someone-else"})
	require.NoError(t, err)
	misissued, err := wrongIssuer.Issue("intruder", time.Hour)
	require.NoError(t, err)

	expired := newTestVerifier(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.Issue("old", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x", Issuer: "mdchat"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "wrong issuer", token: misissued},
		{name: "expired", token: stale},
		{name: "unsigned", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := v.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, principal)
		})
	}
}

func TestVerifier_Issue_RequiresSubject(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.Issue("", time.Hour)

	require.Error(t, err)
}
