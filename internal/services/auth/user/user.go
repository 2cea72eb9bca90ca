package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/louisbranch/atrium/internal/platform/errors"
	"github.com/louisbranch/atrium/internal/platform/id"
)

const (
	// DefaultPasswordMinLength mirrors the sign-up form minimum.
	DefaultPasswordMinLength = 6
	// DefaultPasswordMaxLength bounds password input accepted by the backend.
	DefaultPasswordMaxLength = 128
	// MaxNameLength bounds display names.
	MaxNameLength = 128
)

var (
	// ErrNameRequired indicates a missing display name.
	ErrNameRequired = apperrors.New(apperrors.CodeUserNameEmpty, "Name is required")
	// ErrInvalidEmail indicates an email that is not a bare address.
	ErrInvalidEmail = apperrors.New(apperrors.CodeUserEmailInvalid, "Invalid email")
	// ErrPasswordTooShort indicates a password below the policy minimum.
	ErrPasswordTooShort = apperrors.New(apperrors.CodePasswordTooShort, "Password too short")
	// ErrPasswordTooLong indicates a password above the policy maximum.
	ErrPasswordTooLong = apperrors.New(apperrors.CodePasswordTooLong, "Password too long")
)

// User represents an authenticated identity record.
type User struct {
	ID            string
	Name          string
	Email         string
	Image         string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SignUpInput describes the data needed to create a user with a password.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// PasswordPolicy bounds password length in characters.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

// DefaultPasswordPolicy returns the default length bounds.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: DefaultPasswordMinLength, MaxLength: DefaultPasswordMaxLength}
}

func (p PasswordPolicy) withDefaults() PasswordPolicy {
	if p.MinLength <= 0 {
		p.MinLength = DefaultPasswordMinLength
	}
	if p.MaxLength <= 0 {
		p.MaxLength = DefaultPasswordMaxLength
	}
	return p
}

// Check validates password length against the policy.
func (p PasswordPolicy) Check(password string) error {
	p = p.withDefaults()
	length := utf8.RuneCountInString(password)
	if length < p.MinLength {
		return ErrPasswordTooShort
	}
	if length > p.MaxLength {
		return ErrPasswordTooLong
	}
	return nil
}

// NormalizeEmail trims and lowercases an email and rejects anything that is
// not a bare address such as "Ada <ada@example.com>".
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// NormalizeSignUp trims and validates sign-up input. The password is
// checked but never altered.
func NormalizeSignUp(input SignUpInput, policy PasswordPolicy) (SignUpInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return SignUpInput{}, ErrNameRequired
	}
	if utf8.RuneCountInString(input.Name) > MaxNameLength {
		input.Name = string([]rune(input.Name)[:MaxNameLength])
	}
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return SignUpInput{}, err
	}
	input.Email = email
	if err := policy.Check(input.Password); err != nil {
		return SignUpInput{}, err
	}
	input.Image = strings.TrimSpace(input.Image)
	return input, nil
}

// CreateUser builds a new user record from normalized input.
func CreateUser(input SignUpInput, now func() time.Time, idGenerator func() (string, error)) (User, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	userID, err := idGenerator()
	if err != nil {
		return User{}, fmt.Errorf("generate user id: %w", err)
	}

	createdAt := now().UTC()
	return User{
		ID:        userID,
		Name:      input.Name,
		Email:     input.Email,
		Image:     input.Image,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}
