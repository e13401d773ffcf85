package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is returned when a collection or record is not found.
// An empty ID means the collection itself is unknown.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("collection %q record %q not found", e.Collection, e.ID)
	}
	return fmt.Sprintf("collection %q not found", e.Collection)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// IsRecord reports whether the error is scoped to a single record rather
// than the whole collection.
func (e *NotFoundError) IsRecord() bool {
	return e.ID != ""
}

// StatusCodeError is an interface for errors that carry an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

// ToErrorResponse converts a domain error to the JSON error body served to
// clients. Unknown errors map to a generic internal error.
func ToErrorResponse(err error) *ErrorResponse {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return &ErrorResponse{
			Error:      "resource not found",
			Resource:   nf.Collection,
			ID:         nf.ID,
			StatusCode: nf.StatusCode(),
		}
	}
	return &ErrorResponse{
		Error:      "internal error",
		StatusCode: http.StatusInternalServerError,
	}
}
