package repository

import (
	"context"
	"time"

	"github.com/movievault/movievault/internal/model"
)

// TokenRepository is the revocation ledger: one durable row per issued
// bearer token. Rows are never deleted; logout flips the active flag.
type TokenRepository interface {
	// Record persists an issuance row. Issuance without a ledger row is
	// not allowed, so callers must fail when Record fails.
	Record(ctx context.Context, t *model.IssuedToken) error
	// Deactivate revokes a token and reports whether an active row was
	// flipped. Revoking an already-inactive or unknown token is not an
	// error.
	Deactivate(ctx context.Context, token string) (bool, error)
	// IsActive reports whether the ledger holds an active row for token
	// whose stored expiry is after now.
	IsActive(ctx context.Context, token string, now time.Time) (bool, error)
}
