package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// MaxLength bounds request ids accepted from callers.
const MaxLength = 64

type ctxKey struct{}

func Generate() string {
	return uuid.NewString()
}

// Accept reports whether a caller supplied id can be propagated as is.
// Only ASCII letters, digits, '-', '_' and '.' are allowed, so ids are safe in headers and logs.
func Accept(candidate string) bool {
	if candidate == "" || len(candidate) > MaxLength {
		return false
	}
	for _, c := range candidate {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}

// Resolve returns the first acceptable candidate, or a new id when none is.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if Accept(c) {
			return c
		}
	}
	return Generate()
}

func ToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// FromContext returns an empty string when the context carries no request id.
func FromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ctxKey{}).(string)
	return requestID
}

func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}
