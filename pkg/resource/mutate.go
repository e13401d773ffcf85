package resource

import (
	"github.com/google/uuid"
)

// Mutations operate on pre-existing collections only: a write to an unknown
// collection fails with NotFoundError rather than implicitly creating one.
// Every mutation swaps whole records under the write lock, so concurrent
// readers never observe a partially applied change.

// Create appends a new record to the named collection. A record without an
// id gets a fresh UUID; a supplied id is preserved verbatim. Returns the
// stored record.
func (s *Store) Create(name string, body Record) (Record, error) {
	if body == nil {
		body = Record{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}

	if _, ok := body[IDField]; !ok {
		body[IDField] = uuid.NewString()
	}

	s.collections[name] = append(records, body)
	return body, nil
}

// Replace swaps the entire record with the supplied body (PUT semantics).
// The id is immutable once assigned: whatever the body says, the stored
// record keeps the original id.
func (s *Store) Replace(name, id string, body Record) (Record, error) {
	if body == nil {
		body = Record{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}

	idx := s.locate(records, id)
	if idx < 0 {
		return nil, &NotFoundError{Collection: name, ID: id}
	}

	body[IDField] = records[idx][IDField]
	records[idx] = body
	return body, nil
}

// Merge shallow-merges the supplied fields over the existing record (PATCH
// semantics): supplied fields overwrite, unspecified fields persist, and the
// id stays unchanged. Returns the merged record.
func (s *Store) Merge(name, id string, body Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}

	idx := s.locate(records, id)
	if idx < 0 {
		return nil, &NotFoundError{Collection: name, ID: id}
	}

	existing := records[idx]
	merged := make(Record, len(existing)+len(body))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range body {
		merged[k] = v
	}
	merged[IDField] = existing[IDField]

	records[idx] = merged
	return merged, nil
}

// Delete removes the record from the collection and returns it.
func (s *Store) Delete(name, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}

	idx := s.locate(records, id)
	if idx < 0 {
		return nil, &NotFoundError{Collection: name, ID: id}
	}

	removed := records[idx]
	s.collections[name] = append(records[:idx], records[idx+1:]...)
	return removed, nil
}
