package resource

import (
	"context"
	"sort"
	"sync"
)

// Store is the process-wide container mapping collection names to ordered
// record sequences. It starts empty and unready; the snapshot loader calls
// Publish exactly once with the initial dataset, which releases the
// ready-gate. Every request handler must pass AwaitReady before reading or
// writing, so no request is ever served against a half-loaded store.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record

	readyOnce sync.Once
	ready     chan struct{}
}

// NewStore creates an unpublished Store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string][]Record),
		ready:       make(chan struct{}),
	}
}

// Publish installs the initial dataset and releases the ready-gate. A nil
// dataset publishes an empty store. Subsequent calls are ignored; the
// snapshot is loaded once per process.
func (s *Store) Publish(data map[string][]Record) {
	s.readyOnce.Do(func() {
		s.mu.Lock()
		if data != nil {
			s.collections = data
		}
		// Collections are always non-nil sequences once published.
		for name, records := range s.collections {
			if records == nil {
				s.collections[name] = []Record{}
			}
		}
		s.mu.Unlock()
		close(s.ready)
	})
}

// Ready returns a channel that is closed once the initial dataset has been
// published.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// AwaitReady blocks until the initial dataset has been published or the
// context is done.
func (s *Store) AwaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsReady reports whether the initial dataset has been published.
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Collections returns all collection names in sorted order for deterministic
// output.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the named collection exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.collections[name]
	return ok
}

// Count returns the number of records in the named collection, or 0 if the
// collection is unknown.
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[name])
}

// Snapshot returns a copy of the whole dataset. Record maps are shared with
// the store; callers must treat them as read-only.
func (s *Store) Snapshot() map[string][]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]Record, len(s.collections))
	for name, records := range s.collections {
		out[name] = append([]Record(nil), records...)
	}
	return out
}

// snapshotCollection returns a copy of one collection's record slice, or a
// NotFoundError if the collection is unknown.
func (s *Store) snapshotCollection(name string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}
	return append([]Record(nil), records...), nil
}

// List runs the query engine over the named collection and returns one page
// of records plus the pre-pagination total.
func (s *Store) List(name string, q *Query) (*Page, error) {
	records, err := s.snapshotCollection(name)
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = &Query{Page: 1}
	}

	records = Filter(records, q.Filters)
	records = Search(records, q.Search)
	Sort(records, q.Sort, q.Order)
	page, total := Paginate(records, q.Page, q.Limit)

	return &Page{Records: page, Total: total}, nil
}

// Get returns the first record whose stringified id equals id.
func (s *Store) Get(name, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[name]
	if !ok {
		return nil, &NotFoundError{Collection: name}
	}
	for _, rec := range records {
		if RecordID(rec) == id {
			return rec, nil
		}
	}
	return nil, &NotFoundError{Collection: name, ID: id}
}

// locate returns the index of the first record whose stringified id equals
// id, or -1. Callers must hold the lock.
func (s *Store) locate(records []Record, id string) int {
	for i, rec := range records {
		if RecordID(rec) == id {
			return i
		}
	}
	return -1
}
