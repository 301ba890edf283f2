package utils

import (
	"context"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the caller attached to a request by the auth middleware.
type Identity struct {
	UserID   string
	IsSeller bool
}

func SetIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}
