// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account stored on the server. Passwords are kept only
// as a salted one-way digest.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique, case-sensitive
	PwdHash   []byte    // Argon2id(password, Salt)
	Salt      []byte    // per-user salt
	Role      string    // open set, default "User"
	CreatedAt time.Time
}

// IssuedToken is the revocation-ledger row written for every issued bearer
// token. Rows are never deleted; logout flips Active.
type IssuedToken struct {
	ID        uuid.UUID
	Token     string // unique
	Username  string
	ExpiresAt time.Time
	Active    bool
	CreatedAt time.Time
}

// Session is the issuance payload returned to a caller on register/login.
type Session struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// TokenClaims is the verified claim set of a validated bearer token.
type TokenClaims struct {
	Username string
	Role     string
	TokenID  string // jti
	IssuedAt time.Time
	ExpireAt time.Time
}

// Movie is a single catalog record.
type Movie struct {
	ID          int64
	Title       string
	Description string
	ReleaseYear int32
	Genre       string
	Rating      float64 // [0, 10]
	CreatedAt   time.Time
}

// MovieUpdate carries a partial catalog update; nil fields are unchanged.
type MovieUpdate struct {
	Title       *string
	Description *string
	ReleaseYear *int32
	Genre       *string
	Rating      *float64
}

// MovieFilter narrows a catalog listing. Zero values mean "no filter".
type MovieFilter struct {
	Title       string // substring, case-insensitive
	Genre       string // substring, case-insensitive
	ReleaseYear int32
}

// StatsSource tells which path produced an aggregation result.
type StatsSource string

const (
	// StatsSourceRemote marks a result served by the stats worker.
	StatsSourceRemote StatsSource = "remote"
	// StatsSourceLocal marks a result computed in-process after the worker
	// was unavailable.
	StatsSourceLocal StatsSource = "local"
)

// RatingSummary aggregates a rating sample. All fields are zero for an
// empty sample.
type RatingSummary struct {
	Count   int32
	Average float64 // rounded to 2 decimal places
	Highest float64
	Lowest  float64
}

// RatingDistribution counts ratings per fixed quality band.
type RatingDistribution struct {
	Excellent int32 // >= 8.0
	Good      int32 // [6.0, 8.0)
	Average   int32 // [4.0, 6.0)
	Poor      int32 // < 4.0
}

// RatingTier is the qualitative band of a single rating.
type RatingTier struct {
	Tier        string
	Description string
}

// MovieAge says how long ago a movie was released. Years is negative for
// release years still in the future.
type MovieAge struct {
	Years   int32
	Message string
}
