package app

import (
	"context"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// AllowlistReader is the read side of the admin allowlist store.
type AllowlistReader interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type DenyReason string

const (
	DenyInvalidIdentity DenyReason = "invalid_identity"
	DenyNotAllowlisted  DenyReason = "not_allowlisted"
)

// Decision is the outcome of a single authorization check. It is valid for
// the request it was made for and must not be cached beyond it.
type Decision struct {
	Allowed bool
	// Email is the normalized identity, set when Allowed.
	Email  string
	Reason DenyReason
}

// Gate decides whether a claimed identity may perform admin-only
// operations.
type Gate struct {
	allowlist AllowlistReader
}

func NewGate(allowlist AllowlistReader) *Gate {
	return &Gate{allowlist: allowlist}
}

// Authorize normalizes the claimed email and checks the allowlist. The
// store is consulted on every call: a revoked admin is denied on the very
// next request with no invalidation protocol needed. A store failure is an
// error, never a silent deny.
func (g *Gate) Authorize(ctx context.Context, claimedEmail string) (Decision, error) {
	email := domain.NormalizeEmail(claimedEmail)
	if !domain.ValidEmail(email) {
		return Decision{Reason: DenyInvalidIdentity}, nil
	}

	ok, err := g.allowlist.IsAdmin(ctx, email)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return Decision{Reason: DenyNotAllowlisted}, nil
	}
	return Decision{Allowed: true, Email: email}, nil
}
