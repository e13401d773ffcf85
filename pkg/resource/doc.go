// Package resource provides the in-memory document store and query engine
// that back the REST API.
//
// The store maps collection names (e.g. "posts", "comments") to ordered
// sequences of schema-less records. It is populated once at startup from a
// JSON snapshot and mutated only through the operations in this package;
// mutations live in memory for the process lifetime.
//
// Core types:
//
//   - Store: the process-wide container for all collections, with a
//     ready-gate that suspends callers until the snapshot load completes
//   - Record: a single schema-less document (map of field name to value)
//   - Query: per-request filter/search/sort/pagination parameters
//   - Page: one page of query results plus the pre-pagination total
//
// Query semantics:
//
//   - Equality filters match every non-reserved query parameter against the
//     same-named record field (logical AND, case-insensitive for strings)
//   - Operator suffixes _ne, _gte, _lte and _like extend plain equality
//   - Full-text search (q) matches a lowercased substring anywhere in the
//     record's canonical JSON serialization
//   - Sorting is stable; ties keep their original insertion order
//   - Pagination clamps out-of-range windows to empty pages, never errors
//
// Thread safety:
//
// All operations are safe for concurrent use. Reads take a snapshot of the
// collection under a read lock and operate on the copy; writes are serialized
// with a write lock and replace records wholesale, so readers never observe a
// partially applied mutation.
package resource
