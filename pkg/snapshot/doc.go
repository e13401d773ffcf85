// Package snapshot loads the initial JSON dataset that populates the
// resource store.
//
// A snapshot is a JSON object whose top-level keys are collection names and
// whose values are arrays of records. Sources are tried in order (a remote
// URL first when configured, then local file candidates); the first source
// that fetches and parses wins. When every source fails the loader returns an
// empty dataset and logs a warning — a bad snapshot must never crash the
// server, it just makes every collection look empty.
//
// Top-level values that are not arrays are defensively coerced to empty
// collections so a malformed snapshot cannot break request handling later.
package snapshot
