package app

import (
	"io"

	"github.com/0xalexb/hjarta-loader/server"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithSettings adds the loader modules described by settings.
func WithSettings(settings Settings) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, settings.Module())
	}
}

// WithSettingsDocument adds the loader modules described by the settings
// document at join(root, path), read while the application is built.
func WithSettingsDocument(root, path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, DocumentModule(root, path))
	}
}

// WithAssetServer adds a named asset server module.
// The name is used as both the Fx module name and the DI named tag for server.Config and *server.Server.
// Call multiple times with different names to serve several directories.
func WithAssetServer(name string, opts ...server.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, server.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output, which defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
