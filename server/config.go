// Package server serves a directory of assets over HTTP for loaders to fetch.
//
// The server is an Fx-managed listener around http.FileServer, wrapped in the
// middleware chain from server/middleware. It is the counterpart of the HTTP
// transport: point a loader's root at the server's address and relative paths
// resolve to files under the served directory.
package server

import (
	"errors"
	"fmt"
	"os"
)

// DefaultAddress is the default address for the asset server.
const DefaultAddress = ":8080"

// DefaultDir is the directory served when none is configured.
const DefaultDir = "."

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrNotDirectory is returned when the configured directory is missing or is a file.
var ErrNotDirectory = errors.New("asset path is not a directory")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the server name is empty.
var ErrEmptyName = errors.New("server name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration for an asset server.
type Config struct {
	Address string `yaml:"address"`
	Dir     string `yaml:"dir"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.Dir == "" {
		c.Dir = DefaultDir
		changed = true
	}

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	stat, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotDirectory, err)
	}

	if !stat.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, c.Dir)
	}

	return nil
}
