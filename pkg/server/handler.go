// Core HTTP request handler for the jsond server.

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getjsond/jsond/pkg/httputil"
	"github.com/getjsond/jsond/pkg/logging"
	"github.com/getjsond/jsond/pkg/resource"
)

// MaxBodySize is the maximum allowed request body size for POST/PUT/PATCH
// operations (1MB).
const MaxBodySize = 1 << 20

// TotalCountHeader carries the pre-pagination result count on list responses.
const TotalCountHeader = "X-Total-Count"

// Reserved top-level paths that never resolve to a collection.
const (
	pathDB     = "db"
	pathHealth = "__health"
)

// Handler routes incoming requests to the resource store.
type Handler struct {
	store *resource.Store
	log   *slog.Logger
}

// NewHandler creates a Handler over the given store.
func NewHandler(store *resource.Store) *Handler {
	return &Handler{
		store: store,
		log:   logging.Nop(),
	}
}

// SetLogger sets the operational logger.
func (h *Handler) SetLogger(log *slog.Logger) {
	if log != nil {
		h.log = log
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	// The health probe answers while the snapshot is still loading.
	if path == pathHealth {
		h.handleHealth(w, r)
		return
	}

	// Ready-gate: suspend until the initial snapshot load finishes.
	if err := h.store.AwaitReady(r.Context()); err != nil {
		httputil.WriteServiceUnavailable(w, "not_ready", "initial snapshot load did not complete")
		return
	}

	switch path {
	case "":
		h.handleIndex(w, r)
		return
	case pathDB:
		h.handleDB(w, r)
		return
	}

	segments := strings.Split(path, "/")
	if len(segments) > 2 {
		httputil.WriteNotFound(w, "not_found", "no such route")
		return
	}

	name := segments[0]
	id := ""
	if len(segments) == 2 {
		id = segments[1]
	}

	h.handleResource(w, r, name, id)
}

// handleIndex lists all known collection names.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.WriteMethodNotAllowed(w, "only GET is supported for the index")
		return
	}
	httputil.WriteOK(w, map[string]any{
		"collections": h.store.Collections(),
	})
}

// handleDB returns the entire dataset.
func (h *Handler) handleDB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.WriteMethodNotAllowed(w, "only GET is supported for /db")
		return
	}
	httputil.WriteOK(w, h.store.Snapshot())
}

// handleHealth reports liveness, readiness and the known collection names.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.WriteMethodNotAllowed(w, "only GET is supported for the health probe")
		return
	}

	ready := h.store.IsReady()
	var names []string
	if ready {
		names = h.store.Collections()
	}
	httputil.WriteOK(w, map[string]any{
		"status":      "healthy",
		"ready":       ready,
		"collections": names,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readBody parses a JSON object request body. Returns false after writing an
// error response when the body is oversized or malformed.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (resource.Record, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var body resource.Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteBadRequest(w, "invalid_body", "request body must be a JSON object: "+err.Error())
		return nil, false
	}
	return body, true
}
