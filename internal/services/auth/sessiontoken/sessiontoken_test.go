package sessiontoken

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("k", MinSecretLength))

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	signer, err := NewSigner(testSecret, func() time.Time { return now })
	require.NoError(t, err)

	token, err := signer.Issue("sess-1", now.Add(time.Hour))
	require.NoError(t, err)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.True(t, claims.IssuedAt.Equal(now))
}

func TestParseExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	current := now
	signer, err := NewSigner(testSecret, func() time.Time { return current })
	require.NoError(t, err)

	token, err := signer.Issue("sess-1", now.Add(time.Minute))
	require.NoError(t, err)

	current = now.Add(2 * time.Minute)
	_, err = signer.Parse(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	issuer, err := NewSigner(testSecret, nil)
	require.NoError(t, err)
	other, err := NewSigner([]byte(strings.Repeat("z", MinSecretLength)), nil)
	require.NoError(t, err)

	token, err := issuer.Issue("sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsGarbageAndNoneAlg(t *testing.T) {
	signer, err := NewSigner(testSecret, nil)
	require.NoError(t, err)

	for _, token := range []string{"", "   ", "not.a.jwt"} {
		_, err := signer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", token)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID:        "sess-1",
		Issuer:    defaultIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	none, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = signer.Parse(none)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewSignerRejectsShortSecret(t *testing.T) {
	_, err := NewSigner([]byte("short"), nil)
	assert.Error(t, err)
}

func TestIssueRequiresSessionID(t *testing.T) {
	signer, err := NewSigner(testSecret, nil)
	require.NoError(t, err)
	_, err = signer.Issue(" ", time.Now().Add(time.Hour))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	signer, err := NewSigner(testSecret, nil)
	require.NoError(t, err)

	token, err := signer.Issue("sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.NoError(t, signer.Verify(token))
	assert.ErrorIs(t, signer.Verify(token+"x"), ErrInvalid)
	assert.ErrorIs(t, signer.Verify(""), ErrInvalid)
}
