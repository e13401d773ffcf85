// CORS middleware for the jsond server.

package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/getjsond/jsond/pkg/config"
)

// CORSMiddleware wraps an http.Handler with CORS handling based on
// configuration.
type CORSMiddleware struct {
	handler http.Handler
	config  config.CORSConfig
}

// NewCORSMiddleware creates a new CORS middleware with the given
// configuration.
func NewCORSMiddleware(handler http.Handler, cfg config.CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{
		handler: handler,
		config:  cfg,
	}
}

// ServeHTTP implements the http.Handler interface.
func (m *CORSMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !m.config.Enabled {
		m.handler.ServeHTTP(w, r)
		return
	}

	origin := r.Header.Get("Origin")
	allowOrigin := m.config.AllowOriginValue(origin)

	if allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		if allowOrigin != "*" {
			w.Header().Add("Vary", "Origin")
		}
	}

	// Preflight requests are answered here and never reach the store.
	if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
		if allowOrigin == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.config.AllowedMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(m.config.AllowedHeaders, ", "))
		if m.config.MaxAge > 0 {
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.config.MaxAge))
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	m.handler.ServeHTTP(w, r)
}
