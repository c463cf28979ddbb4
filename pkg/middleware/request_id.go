package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/nbr5410/load-planner/pkg/requestid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID takes the request ID from the X-Request-Id header, falls back to the one
// generated by chi and finally to a new UUID. Malformed caller ids are replaced.
// The ID is stored in the request context and echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.Resolve(r.Header.Get(RequestIDHeader), middleware.GetReqID(r.Context()))

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(requestid.ToContext(r.Context(), requestID)))
	})
}
