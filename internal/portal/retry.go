package portal

import "time"

// RetryPolicy bounds the login-conflict retry behaviour.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy matches the portal's single-active-session rule:
// exactly one retry after a fixed 90 second wait, then give up.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 1, Backoff: 90 * time.Second}
