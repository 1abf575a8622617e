package postgres

import (
	"context"
	"time"

	"github.com/movievault/movievault/internal/errs"
	"github.com/movievault/movievault/internal/model"
)

// TokenRepo implements the revocation ledger using PostgreSQL.
type TokenRepo struct{ db *DB }

// NewTokenRepo constructs a token ledger repository.
func NewTokenRepo(db *DB) *TokenRepo { return &TokenRepo{db: db} }

// Record inserts the issuance row for a freshly minted token.
func (r *TokenRepo) Record(ctx context.Context, t *model.IssuedToken) error {
	const q = `
INSERT INTO user_tokens (id, token, username, expires_at, active)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, t.ID, t.Token, t.Username, t.ExpiresAt, t.Active)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Deactivate flips the active flag in a single statement; the WHERE clause
// makes read-check-write atomic, so a concurrent second logout simply
// matches zero rows.
func (r *TokenRepo) Deactivate(ctx context.Context, token string) (bool, error) {
	const q = `
UPDATE user_tokens SET active = false
WHERE token = $1 AND active`
	tag, err := r.db.Pool.Exec(ctx, q, token)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IsActive reports whether the ledger holds an active, unexpired row for
// the token. The expiry compared here is the ledger's stored copy, not the
// token's embedded claim.
func (r *TokenRepo) IsActive(ctx context.Context, token string, now time.Time) (bool, error) {
	const q = `
SELECT EXISTS (
  SELECT 1 FROM user_tokens
  WHERE token = $1 AND active AND expires_at > $2
)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, token, now).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
