package errors

import stderrors "errors"

// Error is the domain error type.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message safe to show users
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// As extracts the first domain error in err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if !stderrors.As(err, &domainErr) || domainErr == nil {
		return nil, false
	}
	return domainErr, true
}

// IsDomainError reports whether err carries a domain error.
func IsDomainError(err error) bool {
	_, ok := As(err)
	return ok
}
