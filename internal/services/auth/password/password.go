// Package password hashes and verifies account passwords with bcrypt.
//
// Input is first reduced with SHA-256 so passwords longer than bcrypt's
// 72-byte limit are neither rejected nor silently truncated.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match its hash.
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes and compares passwords at a fixed bcrypt cost.
type Hasher struct {
	Cost int

	dummy []byte
}

// NewHasher returns a hasher with cost, or bcrypt.DefaultCost when cost is
// outside bcrypt's accepted range.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword(prehash("atrium-timing-equalizer"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Hasher{Cost: cost, dummy: dummy}, nil
}

// Hash returns the bcrypt hash of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(plain), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports ErrMismatch when plain does not match hash.
func (h *Hasher) Compare(hash string, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

// CompareDummy spends the same work as Compare against a throwaway hash so
// unknown accounts answer in the same time as wrong passwords.
func (h *Hasher) CompareDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, prehash(plain))
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	encoded := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(encoded, sum[:])
	return encoded
}
