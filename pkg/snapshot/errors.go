package snapshot

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by a file source when none of its candidate
// paths exist.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no snapshot file found (tried %s)", strings.Join(e.Paths, ", "))
}

// FetchError is returned by a URL source when the HTTP response status is
// not in the success range.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("snapshot fetch from %s returned status %d", e.URL, e.Status)
}

// ParseError is returned when snapshot content is not a valid JSON object.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid snapshot from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
