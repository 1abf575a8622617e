// Package limiter throttles login attempts per (username, client IP).
package limiter

import (
	"context"
	"time"
)

// Limiter gates login attempts with a sliding failure window and temporary
// lockouts. It is consulted before credentials are checked.
type Limiter interface {
	// Allow reports whether a login attempt may proceed. When denied, the
	// duration says how long until the lock lifts.
	Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
	// Success clears accumulated failures after a correct password.
	Success(ctx context.Context, username string, ipHash []byte) error
	// Failure records a wrong password. Once the window threshold is hit it
	// installs a lock and reports it with the lock duration.
	Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
}
