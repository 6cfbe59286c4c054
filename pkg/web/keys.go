package web

import "context"

// ctxKeyRequestID is the context key under which the request ID travels.
type ctxKeyRequestID struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, id)
}

// GetRequestID extracts the request ID from ctx.
// The second return value reports whether an ID was present.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return id, ok
}
