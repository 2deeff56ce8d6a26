package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	loader "github.com/0xalexb/hjarta-loader"

	"go.uber.org/fx"
)

// ErrPathIsDirectory is returned when the requested path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

const scheme = "file://"

// Transport implements loader.Transport for files on the local filesystem.
type Transport struct{}

// NewTransport creates a filesystem Transport.
func NewTransport() *Transport {
	return &Transport{}
}

// Open opens target for reading. The returned body is the open file.
func (t *Transport) Open(ctx context.Context, target string) (*loader.Response, error) {
	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", target, err)
	}

	cleanPath := filepath.Clean(strings.TrimPrefix(target, scheme))

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	f, err := os.Open(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", cleanPath, err)
	}

	location := cleanPath

	abs, err := filepath.Abs(cleanPath)
	if err == nil {
		location = abs
	}

	return &loader.Response{
		StatusCode:    0,
		URL:           scheme + filepath.ToSlash(location),
		ContentLength: stat.Size(),
		Body:          f,
	}, nil
}

// Module creates an Fx module providing a Transport as the container's loader.Transport.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module() fx.Option {
	return fx.Module("transport.file",
		fx.Provide(
			fx.Annotate(
				NewTransport,
				fx.As(new(loader.Transport)),
			),
		),
	)
}
