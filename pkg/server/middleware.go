// Request logging middleware for the jsond server.

package server

import (
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder captures the response status code for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one line per request at debug level, with slow or
// failed requests promoted to warn.
type LoggingMiddleware struct {
	handler http.Handler
	log     *slog.Logger
}

// NewLoggingMiddleware wraps a handler with request logging.
func NewLoggingMiddleware(handler http.Handler, log *slog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{handler: handler, log: log}
}

// ServeHTTP implements the http.Handler interface.
func (m *LoggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	m.handler.ServeHTTP(rec, r)

	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	}
	if rec.status >= http.StatusInternalServerError {
		m.log.Warn("request failed", attrs...)
		return
	}
	m.log.Debug("request handled", attrs...)
}
