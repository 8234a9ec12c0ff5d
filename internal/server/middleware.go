package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/maruel/ksid"

	"github.com/maruel/showcase/internal/server/dto"
	"github.com/maruel/showcase/internal/server/reqctx"
)

// statusResponseWriter records the status code written by the handler.
type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// WriteHeader records the status code before writing it.
func (rw *statusResponseWriter) WriteHeader(statusCode int) {
	if !rw.wroteHeader {
		rw.status = statusCode
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Write records an implicit 200 when no status was written.
func (rw *statusResponseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.status = http.StatusOK
		rw.wroteHeader = true
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (rw *statusResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// RequestMiddleware tags every request with a request ID, client IP and
// User-Agent, logs it once served and turns handler panics into 500 errors.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := ksid.NewID()
		ctx := reqctx.WithRequestID(r.Context(), id)
		ctx = reqctx.WithClientIP(ctx, reqctx.GetClientIP(r))
		ctx = reqctx.WithUserAgent(ctx, r.Header.Get("User-Agent"))
		r = r.WithContext(ctx)

		w.Header().Set("X-Request-ID", id.String())
		rw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				slog.ErrorContext(ctx, "Handler panic", "req", id, "method", r.Method, "path", r.URL.Path, "panic", v)
				if !rw.wroteHeader {
					apiErr := dto.Internal(fmt.Sprint(v))
					writeErrorResponseWithCode(rw, apiErr.StatusCode(), apiErr.Code(), apiErr.Error(), nil)
				}
			}
			slog.InfoContext(ctx, "http",
				"req", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"dur", time.Since(start).Round(time.Millisecond),
				"ip", reqctx.ClientIP(ctx),
				"ua", reqctx.UserAgent(ctx),
			)
		}()
		next.ServeHTTP(rw, r)
	})
}
