// Package sessiontoken signs and verifies the opaque session cookie value.
//
// The token is an HS256 JWT whose jti is the session id. Verification only
// proves the token was issued by this process and has not expired; the
// session row remains the source of truth for revocation.
package sessiontoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum signing secret size in bytes.
const MinSecretLength = 32

const defaultIssuer = "atrium"

var (
	// ErrInvalid indicates a malformed, tampered, or foreign token.
	ErrInvalid = errors.New("session token is invalid")
	// ErrExpired indicates a token past its expiry.
	ErrExpired = errors.New("session token is expired")
)

// Claims captures validated token claims.
type Claims struct {
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Signer issues and parses session tokens with a shared secret.
type Signer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewSigner builds a signer. The secret must be at least MinSecretLength bytes.
func NewSigner(secret []byte, now func() time.Time) (*Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)
	}
	if now == nil {
		now = time.Now
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Signer{secret: key, issuer: defaultIssuer, now: now}, nil
}

// Issue returns a signed token for sessionID valid until expiresAt.
func (s *Signer) Issue(sessionID string, expiresAt time.Time) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", errors.New("session id is required")
	}
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(s.now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt.UTC()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its claims.
func (s *Signer) Parse(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrInvalid
	}
	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(parsed.ID) == "" {
		return Claims{}, ErrInvalid
	}
	claims := Claims{
		SessionID: parsed.ID,
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// Verify reports whether token is a valid, unexpired session token.
func (s *Signer) Verify(token string) error {
	_, err := s.Parse(token)
	return err
}
