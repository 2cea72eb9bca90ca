package credentials

import "errors"

var (
	errBackendMissing = errors.New("authentication backend is not configured")
	errEmptyToken     = errors.New("backend returned an empty session token")
)
