// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication (unknown user or wrong password).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrTokenInvalid indicates a malformed or wrongly signed token string.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpiredOrRevoked indicates a well-formed token that failed the
	// expiry or revocation-ledger check.
	ErrTokenExpiredOrRevoked = errors.New("token expired or revoked")

	// ErrStatsUnavailable indicates the remote rating calculator could not
	// serve a call. It never leaves the stats orchestrator.
	ErrStatsUnavailable = errors.New("stats worker unavailable")
)
