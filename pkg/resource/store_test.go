package resource

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"
)

func publishedStore() *Store {
	s := NewStore()
	s.Publish(map[string][]Record{
		"books": {
			{"id": "1", "title": "Dune", "year": float64(1965)},
			{"id": "2", "title": "Foundation", "year": float64(1951)},
		},
		"authors": {},
	})
	return s
}

func TestStoreReadyGate(t *testing.T) {
	s := NewStore()

	if s.IsReady() {
		t.Fatal("new store must not be ready")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := s.AwaitReady(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("AwaitReady before publish = %v, want deadline exceeded", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.AwaitReady(context.Background())
	}()

	s.Publish(nil)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("AwaitReady after publish = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("AwaitReady did not release after publish")
	}

	if !s.IsReady() {
		t.Error("store must be ready after publish")
	}
}

func TestStorePublishOnce(t *testing.T) {
	s := NewStore()
	s.Publish(map[string][]Record{"books": {{"id": "1"}}})
	s.Publish(map[string][]Record{"movies": {{"id": "m1"}}})

	if got := s.Collections(); !reflect.DeepEqual(got, []string{"books"}) {
		t.Errorf("second publish must be ignored, collections = %v", got)
	}
}

func TestStorePublishCoercesNilCollections(t *testing.T) {
	s := NewStore()
	s.Publish(map[string][]Record{"ghosts": nil})

	page, err := s.List("ghosts", nil)
	if err != nil {
		t.Fatalf("nil collection must be listable after publish: %v", err)
	}
	if page.Total != 0 || len(page.Records) != 0 {
		t.Errorf("expected empty collection, got %+v", page)
	}
}

func TestStoreCollectionsSorted(t *testing.T) {
	s := NewStore()
	s.Publish(map[string][]Record{"zebras": {}, "apples": {}, "mangos": {}})

	want := []string{"apples", "mangos", "zebras"}
	if got := s.Collections(); !reflect.DeepEqual(got, want) {
		t.Errorf("Collections() = %v, want %v", got, want)
	}
}

func TestStoreListDefaults(t *testing.T) {
	s := publishedStore()

	page, err := s.List("books", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("total = %d, want 2", page.Total)
	}
	// Insertion order by default.
	if page.Records[0]["title"] != "Dune" || page.Records[1]["title"] != "Foundation" {
		t.Errorf("unexpected order: %v", page.Records)
	}
}

// An absurd _page value must not wrap the window arithmetic into a negative
// slice index; the request yields an empty page like any other out-of-range
// window.
func TestStoreListHugePage(t *testing.T) {
	s := publishedStore()

	values, err := url.ParseQuery("_page=9223372036854775000&_limit=2")
	if err != nil {
		t.Fatalf("bad test query: %v", err)
	}

	page, err := s.List("books", ParseQuery(values))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 2 || len(page.Records) != 0 {
		t.Errorf("expected empty page with total 2, got %+v", page)
	}
}

func TestStoreListUnknownCollection(t *testing.T) {
	s := publishedStore()

	_, err := s.List("ghosts", nil)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("List(ghosts) error = %v, want NotFoundError", err)
	}
	if nf.Collection != "ghosts" || nf.IsRecord() {
		t.Errorf("error must be collection-scoped, got %+v", nf)
	}
}

func TestStoreGet(t *testing.T) {
	s := publishedStore()

	rec, err := s.Get("books", "2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["title"] != "Foundation" {
		t.Errorf("Get returned %v", rec)
	}

	_, err = s.Get("books", "404")
	var nf *NotFoundError
	if !errors.As(err, &nf) || !nf.IsRecord() {
		t.Errorf("missing record error = %v, want record-scoped NotFoundError", err)
	}
}

func TestStoreGetNumericID(t *testing.T) {
	s := NewStore()
	s.Publish(map[string][]Record{
		"books": {{"id": float64(7), "title": "Hyperion"}},
	})

	rec, err := s.Get("books", "7")
	if err != nil {
		t.Fatalf("numeric id must match its string form: %v", err)
	}
	if rec["title"] != "Hyperion" {
		t.Errorf("Get returned %v", rec)
	}
}

func TestStoreGetFirstMatchWins(t *testing.T) {
	s := NewStore()
	s.Publish(map[string][]Record{
		"books": {
			{"id": "dup", "title": "First"},
			{"id": "dup", "title": "Second"},
		},
	})

	rec, err := s.Get("books", "dup")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["title"] != "First" {
		t.Errorf("lookups must return the first match, got %v", rec)
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := publishedStore()

	snap := s.Snapshot()
	snap["books"] = snap["books"][:0]

	if s.Count("books") != 2 {
		t.Error("mutating the snapshot slice must not affect the store")
	}
}

func TestStoreHasAndCount(t *testing.T) {
	s := publishedStore()

	if !s.Has("books") || !s.Has("authors") {
		t.Error("Has must report published collections")
	}
	if s.Has("ghosts") {
		t.Error("Has must not report unknown collections")
	}
	if s.Count("books") != 2 || s.Count("authors") != 0 || s.Count("ghosts") != 0 {
		t.Error("Count mismatch")
	}
}
