// Collection CRUD handlers for the jsond server.

package server

import (
	"net/http"
	"strconv"

	"github.com/getjsond/jsond/pkg/httputil"
	"github.com/getjsond/jsond/pkg/resource"
)

// handleResource dispatches CRUD operations on a named collection.
func (h *Handler) handleResource(w http.ResponseWriter, r *http.Request, name, id string) {
	switch r.Method {
	case http.MethodGet:
		if id != "" {
			h.handleGet(w, name, id)
			return
		}
		h.handleList(w, r, name)

	case http.MethodPost:
		if id != "" {
			httputil.WriteMethodNotAllowed(w, "POST is not supported on a single record")
			return
		}
		h.handleCreate(w, r, name)

	case http.MethodPut:
		if id == "" {
			httputil.WriteBadRequest(w, "id_required", "ID required for PUT")
			return
		}
		h.handleReplace(w, r, name, id)

	case http.MethodPatch:
		if id == "" {
			httputil.WriteBadRequest(w, "id_required", "ID required for PATCH")
			return
		}
		h.handleMerge(w, r, name, id)

	case http.MethodDelete:
		if id == "" {
			httputil.WriteBadRequest(w, "id_required", "ID required for DELETE")
			return
		}
		h.handleDelete(w, name, id)

	default:
		httputil.WriteMethodNotAllowed(w, "method not allowed")
	}
}

// handleList returns one page of records. The pre-pagination total goes into
// the X-Total-Count header so clients can compute page counts.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request, name string) {
	query := resource.ParseQuery(r.URL.Query())

	page, err := h.store.List(name, query)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.Header().Set(TotalCountHeader, strconv.Itoa(page.Total))
	w.Header().Add("Access-Control-Expose-Headers", TotalCountHeader)
	httputil.WriteOK(w, page.Records)
}

// handleGet returns a single record by id.
func (h *Handler) handleGet(w http.ResponseWriter, name, id string) {
	rec, err := h.store.Get(name, id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, rec)
}

// handleCreate appends a new record.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request, name string) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Create(name, body)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteCreated(w, rec)
}

// handleReplace replaces a record wholesale (PUT semantics).
func (h *Handler) handleReplace(w http.ResponseWriter, r *http.Request, name, id string) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Replace(name, id, body)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, rec)
}

// handleMerge shallow-merges fields into a record (PATCH semantics).
func (h *Handler) handleMerge(w http.ResponseWriter, r *http.Request, name, id string) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Merge(name, id, body)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, rec)
}

// handleDelete removes a record and returns it.
func (h *Handler) handleDelete(w http.ResponseWriter, name, id string) {
	rec, err := h.store.Delete(name, id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, rec)
}

// writeDomainError maps a store error onto its HTTP response.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	resp := resource.ToErrorResponse(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		h.log.Error("resource operation failed", "error", err)
	}
	httputil.WriteJSON(w, resp.StatusCode, resp)
}
