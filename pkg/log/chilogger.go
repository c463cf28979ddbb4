package log

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nbr5410/load-planner/pkg/requestid"
)

// quietPaths are probed continuously and logged at debug level on success.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger logs one entry per request once the response is written.
// The entry carries the chi route pattern so requests are grouped per endpoint.
func Logger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.Logger received a nil *zap.Logger")
	}

	logger := l.Named(name)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				level := levelFor(r, status)
				if ce := logger.Check(level, r.Method+" "+r.URL.Path); ce != nil {
					ce.Write(
						zap.String("request_id", requestid.FromRequest(r)),
						zap.String("route", routePattern(r)),
						zap.String("remote_addr", clientIP(r)),
						zap.Int("status", status),
						zap.Int("response_bytes", ww.BytesWritten()),
						zap.Duration("latency", time.Since(start)),
						zap.String("user_agent", r.UserAgent()),
					)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func levelFor(r *http.Request, status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zap.ErrorLevel
	case status >= http.StatusBadRequest:
		return zap.WarnLevel
	case r.Method == http.MethodGet && quietPaths[r.URL.Path]:
		return zap.DebugLevel
	default:
		return zap.InfoLevel
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
