// Package cli implements the tilefetch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	loader "github.com/0xalexb/hjarta-loader"
	"github.com/0xalexb/hjarta-loader/app"
	"github.com/0xalexb/hjarta-loader/logging"
)

// defaultSettingsName is searched for in the XDG config directories when --config is not given.
const defaultSettingsName = "tilefetch/settings.yaml"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	config    string
	timeout   time.Duration
	maxSize   string
}

// NewRootCommand builds the tilefetch command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "tilefetch",
		Short: "Fetch and serve tile assets",
		Long: `Tilefetch loads assets relative to a root location over HTTP or from the
local filesystem, and can serve a directory of assets for other loaders.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(
				logging.LoggerConfig{Level: flags.logLevel, Format: flags.logFormat},
				cmd.ErrOrStderr(),
			))
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pflags.StringVar(&flags.logFormat, "log-format", logging.FormatText, "Log format (json, text)")
	pflags.StringVarP(&flags.config, "config", "c", "",
		"Settings document location, file path or URL (default $XDG_CONFIG_HOME/"+defaultSettingsName+")")
	pflags.DurationVar(&flags.timeout, "timeout", loader.DefaultTimeout, "Per-fetch timeout")
	pflags.StringVar(&flags.maxSize, "max-size", "", "Largest accepted payload, e.g. 64MB (default 2.1 GB)")

	rootCmd.AddCommand(newGetCommand(flags), newServeCommand(flags), newVersionCommand())

	return rootCmd
}

// Execute runs the root command with a context canceled on SIGINT or SIGTERM.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := NewRootCommand()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, formatError(err))
	}

	return err
}

// settings resolves loader settings from --config, then applies flag overrides.
func (f *globalFlags) settings(cmd *cobra.Command, root string) (*app.Settings, error) {
	settings := &app.Settings{}
	location := f.configLocation()

	if location != "" {
		dir, name := splitLocation(location)

		loaded, err := app.LoadSettings(cmd.Context(), dir, name)
		if err != nil {
			return nil, err //nolint:wrapcheck // already carries the failing stage
		}

		settings = loaded
	}

	if root != "" {
		settings.Root = root
		settings.Transport = transportFor(root)
	}

	if settings.Transport == "" {
		settings.Transport = transportFor(settings.Root)
	}

	if location == "" || cmd.Flags().Changed("timeout") {
		settings.TimeoutMS = f.timeout.Milliseconds()
	}

	if f.maxSize != "" {
		size, err := humanize.ParseBytes(f.maxSize)
		if err != nil {
			return nil, fmt.Errorf("%w: --max-size %q: %w", loader.ErrConfiguration, f.maxSize, err)
		}

		settings.MaxPayloadSize = int64(min(size, uint64(loader.MaxPayloadSize))) //nolint:gosec // clamped above
	}

	settings.SetDefaults()

	err := settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", loader.ErrConfiguration, err)
	}

	return settings, nil
}

// configLocation returns --config, or the first settings file found in the XDG config directories.
func (f *globalFlags) configLocation() string {
	if f.config != "" {
		return f.config
	}

	path, err := xdg.SearchConfigFile(defaultSettingsName)
	if err != nil {
		return ""
	}

	slog.Debug("using settings", "path", path)

	return path
}

func transportFor(root string) string {
	if strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://") {
		return app.TransportHTTP
	}

	return app.TransportFile
}

// splitLocation splits a settings location into a root and a relative name.
func splitLocation(location string) (string, string) {
	idx := strings.LastIndex(location, "/")
	if idx < 0 {
		return "", location
	}

	return location[:idx+1], location[idx+1:]
}

// formatError converts loader errors to user-friendly messages.
func formatError(err error) string {
	var (
		statusErr *loader.StatusError
		sizeErr   *loader.PayloadTooLargeError
	)

	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Error: %s answered %d", statusErr.URL, statusErr.Code)
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("Error: %v", sizeErr)
	case errors.Is(err, context.DeadlineExceeded):
		return "Error: timed out"
	case errors.Is(err, context.Canceled):
		return "Error: operation canceled"
	case errors.Is(err, loader.ErrConfiguration):
		return fmt.Sprintf("Error: invalid configuration: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
