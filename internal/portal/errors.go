package portal

import "errors"

// Error kinds surfaced by the portal engine. Each maps to a distinct
// user-visible message; the exit-status mapping lives in the analyzer.
var (
	ErrServiceUnavailable      = errors.New("portal is down for maintenance")
	ErrCsrfTokenNotFound       = errors.New("login form token not found")
	ErrLoginConflictUnresolved = errors.New("login conflict not resolved after retry")
	ErrInvalidCredentials      = errors.New("login rejected by portal")
	ErrNetwork                 = errors.New("portal network error")
	ErrDataFormat              = errors.New("unexpected toll data format")
)
