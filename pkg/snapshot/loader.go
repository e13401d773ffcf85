package snapshot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ohler55/ojg/oj"

	"github.com/getjsond/jsond/pkg/logging"
	"github.com/getjsond/jsond/pkg/resource"
)

// Loader tries an ordered chain of sources and produces the dataset for the
// resource store.
type Loader struct {
	sources []Source
	log     *slog.Logger
}

// NewLoader creates a Loader over the given sources, tried in order.
func NewLoader(log *slog.Logger, sources ...Source) *Loader {
	if log == nil {
		log = logging.Nop()
	}
	return &Loader{sources: sources, log: log}
}

// Load returns the dataset from the first source that fetches and parses.
// Load never fails: when every source fails it logs a warning and returns an
// empty dataset, so the server starts with all collections empty rather than
// crashing over a bad snapshot.
func (l *Loader) Load(ctx context.Context) map[string][]resource.Record {
	for _, src := range l.sources {
		data, err := src.Fetch(ctx)
		if err != nil {
			l.log.Warn("snapshot source failed", "source", src.Name(), "error", err)
			continue
		}

		collections, err := Parse(src.Name(), data)
		if err != nil {
			l.log.Warn("snapshot source unparseable", "source", src.Name(), "error", err)
			continue
		}

		total := 0
		for _, records := range collections {
			total += len(records)
		}
		l.log.Info("snapshot loaded",
			"source", src.Name(),
			"collections", len(collections),
			"records", total)
		return collections
	}

	l.log.Warn("all snapshot sources failed, serving empty dataset")
	return map[string][]resource.Record{}
}

// Parse decodes raw snapshot bytes into collections. The top level must be a
// JSON object; anything else is a ParseError.
func Parse(source string, data []byte) (map[string][]resource.Record, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	raw, ok := parsed.(map[string]any)
	if !ok {
		return nil, &ParseError{Source: source, Err: errors.New("top level is not a JSON object")}
	}

	return Normalize(raw), nil
}

// Normalize coerces every top-level value into an ordered record sequence.
// Values that are not arrays, and array elements that are not objects,
// become empty/absent rather than crashing request handling later.
func Normalize(raw map[string]any) map[string][]resource.Record {
	collections := make(map[string][]resource.Record, len(raw))
	for name, value := range raw {
		items, ok := value.([]any)
		if !ok {
			collections[name] = []resource.Record{}
			continue
		}

		records := make([]resource.Record, 0, len(items))
		for _, item := range items {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		collections[name] = records
	}
	return collections
}
