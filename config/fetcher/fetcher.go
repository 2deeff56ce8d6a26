package fetcher

import (
	"bytes"
	"context"
	"fmt"

	loader "github.com/0xalexb/hjarta-loader"
)

// Fetcher implements config.DataFetcher over a loader.
type Fetcher struct {
	location string
	data     []byte
}

// NewFetcher returns a constructor that loads path relative to the loader's root and caches the result.
// This pattern is Fx-friendly, allowing the DI container to control when the fetch happens.
func NewFetcher(l *loader.Loader, path string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return Load(context.Background(), l, path)
	}
}

// Load fetches path relative to the loader's root and caches a copy of it.
func Load(ctx context.Context, l *loader.Loader, path string) (*Fetcher, error) {
	err := l.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	return &Fetcher{
		location: loader.Join(l.Root(), path),
		data:     bytes.Clone(l.Buffer().Bytes()),
	}, nil
}

// Location returns the target the document was loaded from.
func (f *Fetcher) Location() string {
	return f.location
}

// Fetch returns a copy of the cached document.
func (f *Fetcher) Fetch() ([]byte, error) {
	return bytes.Clone(f.data), nil
}
