package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultFetchTimeout bounds a remote snapshot fetch when the source has no
// explicit timeout. A hung origin must not stall startup forever.
const DefaultFetchTimeout = 30 * time.Second

// MaxSnapshotSize caps how much snapshot data is read from any source (32MB).
const MaxSnapshotSize = 32 << 20

// Source produces raw snapshot bytes. Sources are tried in order by the
// Loader until one succeeds.
type Source interface {
	// Name identifies the source in log output.
	Name() string
	// Fetch returns the raw snapshot content or a typed failure.
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the first existing path from an ordered candidate list.
type FileSource struct {
	Paths []string
}

// NewFileSource creates a FileSource over the given candidate paths.
func NewFileSource(paths ...string) *FileSource {
	return &FileSource{Paths: paths}
}

// Name implements Source.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file %v", s.Paths)
}

// Fetch returns the contents of the first candidate path that exists, or a
// NotFoundError when none do.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	for _, path := range s.Paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
		}
		return data, nil
	}
	return nil, &NotFoundError{Paths: s.Paths}
}

// URLSource fetches the snapshot from a remote URL with an HTTP GET.
type URLSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

// NewURLSource creates a URLSource with the default client and timeout.
func NewURLSource(url string) *URLSource {
	return &URLSource{URL: url, Timeout: DefaultFetchTimeout}
}

// Name implements Source.
func (s *URLSource) Name() string {
	return s.URL
}

// Fetch issues the GET and returns the body, or a FetchError when the
// response status is not in the 2xx range.
func (s *URLSource) Fetch(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot fetch from %s failed: %w", s.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: s.URL, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSnapshotSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}
	return data, nil
}
