// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/louisbranch/atrium/internal/platform/errors"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key ("namespace.key").
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// As extracts a typed Error from err.
func As(err error) (Error, bool) {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return Error{}, false
	}
	return appErr, true
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	appErr, ok := As(err)
	if !ok {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code. Backend domain errors
// that were never translated keep their own code mapping.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr, ok := As(err)
	if !ok {
		if domainErr, isDomain := domainerrors.As(err); isDomain {
			return domainErr.Code.HTTPStatus()
		}
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromDomain translates a backend domain error into a typed web error that
// carries the backend message. Errors that are not domain errors are
// returned unchanged so callers can treat them as unexpected.
func FromDomain(err error) error {
	domainErr, ok := domainerrors.As(err)
	if !ok {
		return err
	}
	return Error{Kind: kindForCode(domainErr.Code), Message: strings.TrimSpace(domainErr.Message)}
}

func kindForCode(code domainerrors.Code) Kind {
	switch code.HTTPStatus() {
	case http.StatusBadRequest:
		return KindInvalidInput
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindUnknown
	}
}
