package ctxutil

import (
	"context"

	"github.com/neolog/site-api/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the verified caller identity in the context.
func WithIdentity(ctx context.Context, id domain.VerifiedIdentity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the verified identity from the context.
// Returns the zero identity and false if the value is missing or of the wrong type.
func IdentityFromCtx(ctx context.Context) (domain.VerifiedIdentity, bool) {
	id, ok := ctx.Value(identityKey).(domain.VerifiedIdentity)
	if !ok {
		return domain.VerifiedIdentity{}, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
