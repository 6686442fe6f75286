package http

import (
	"context"

	"rent-ledger-backend/internal/domain"
)

type ownerContextKey struct{}

// WithOwner stores the authenticated owner on the request context.
func WithOwner(ctx context.Context, owner domain.Owner) context.Context {
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

// OwnerFromContext returns the owner set by the auth middleware.
func OwnerFromContext(ctx context.Context) (domain.Owner, bool) {
	owner, ok := ctx.Value(ownerContextKey{}).(domain.Owner)
	return owner, ok && owner.Valid()
}
