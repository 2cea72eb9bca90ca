// Package errors provides structured domain errors with stable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"
	// CodeNotFound represents a missing record.
	CodeNotFound Code = "NOT_FOUND"

	// User errors
	CodeUserNameEmpty    Code = "NAME_REQUIRED"
	CodeUserEmailInvalid Code = "INVALID_EMAIL"
	CodeUserEmailTaken   Code = "USER_ALREADY_EXISTS"

	// Password errors
	CodePasswordTooShort Code = "PASSWORD_TOO_SHORT"
	CodePasswordTooLong  Code = "PASSWORD_TOO_LONG"

	// Credential errors
	CodeInvalidCredentials Code = "INVALID_EMAIL_OR_PASSWORD"

	// Session errors
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
)

// HTTPStatus maps a code to the status a web surface should answer with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUserNameEmpty, CodeUserEmailInvalid, CodePasswordTooShort, CodePasswordTooLong:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUserEmailTaken:
		return http.StatusConflict
	case CodeInvalidCredentials, CodeSessionNotFound:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
