package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	loader "github.com/0xalexb/hjarta-loader"
	"github.com/0xalexb/hjarta-loader/config"
	"github.com/0xalexb/hjarta-loader/config/fetcher"
	yamlparser "github.com/0xalexb/hjarta-loader/config/parser/yaml"
	filetransport "github.com/0xalexb/hjarta-loader/transport/file"
	httptransport "github.com/0xalexb/hjarta-loader/transport/http"

	"go.uber.org/fx"
)

// Transport names accepted in Settings.
const (
	TransportHTTP = "http"
	TransportFile = "file"
)

// SettingsPath is the document path the loader settings live under.
const SettingsPath = "loader"

// ErrUnknownTransport is returned when Settings names an unsupported transport.
var ErrUnknownTransport = errors.New("unknown transport")

// ErrNegativeLimit is returned when a timeout or size limit is negative.
var ErrNegativeLimit = errors.New("limit must not be negative")

// Settings describes how default loaders are built.
type Settings struct {
	Root           string `yaml:"root"`
	Transport      string `yaml:"transport"`
	TimeoutMS      int64  `yaml:"timeout_ms"`
	MaxPayloadSize int64  `yaml:"max_payload_size"`
	ContentType    string `yaml:"content_type"`
}

// SetDefaults fills unset fields.
func (s *Settings) SetDefaults() bool {
	changed := false

	if s.Transport == "" {
		s.Transport = TransportHTTP
		changed = true
	}

	if s.TimeoutMS == 0 {
		s.TimeoutMS = loader.DefaultTimeout.Milliseconds()
		changed = true
	}

	if s.MaxPayloadSize == 0 {
		s.MaxPayloadSize = loader.MaxPayloadSize
		changed = true
	}

	if s.ContentType == "" && s.Transport == TransportHTTP {
		s.ContentType = httptransport.DefaultContentType
		changed = true
	}

	return changed
}

// Validate checks the transport name and limits.
func (s *Settings) Validate() error {
	switch s.Transport {
	case TransportHTTP, TransportFile:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, s.Transport)
	}

	if s.TimeoutMS < 0 {
		return fmt.Errorf("%w: timeout_ms %d", ErrNegativeLimit, s.TimeoutMS)
	}

	if s.MaxPayloadSize < 0 {
		return fmt.Errorf("%w: max_payload_size %d", ErrNegativeLimit, s.MaxPayloadSize)
	}

	return nil
}

// LoaderOptions converts the limits into loader options.
func (s *Settings) LoaderOptions() []loader.Option {
	return []loader.Option{
		loader.WithTimeout(time.Duration(s.TimeoutMS) * time.Millisecond),
		loader.WithMaxPayloadSize(s.MaxPayloadSize),
	}
}

// NewTransport builds the configured transport.
//
//nolint:ireturn // the transport is chosen at runtime
func (s *Settings) NewTransport() (loader.Transport, error) {
	switch s.Transport {
	case TransportHTTP:
		return httptransport.NewTransport(httptransport.WithContentType(s.ContentType)), nil
	case TransportFile:
		return filetransport.NewTransport(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, s.Transport)
	}
}

// NewFactory builds a loader.Factory over the configured transport and limits.
func (s *Settings) NewFactory() (loader.Factory, error) {
	transport, err := s.NewTransport()
	if err != nil {
		return nil, err
	}

	return loader.NewFactory(transport, s.LoaderOptions()...), nil
}

// Module provides the configured transport, the loader Factory and Config, and
// a default *loader.Loader rooted at Root.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func (s *Settings) Module() fx.Option {
	settings := *s
	settings.SetDefaults()

	err := settings.Validate()
	if err != nil {
		return fx.Error(err)
	}

	var transportModule fx.Option

	switch settings.Transport {
	case TransportFile:
		transportModule = filetransport.Module()
	default:
		transportModule = httptransport.Module(httptransport.WithContentType(settings.ContentType))
	}

	return fx.Module("settings",
		fx.Supply(settings),
		transportModule,
		loader.NewModule(settings.LoaderOptions()...),
		fx.Provide(func(cfg loader.Config) (*loader.Loader, error) {
			return cfg.NewDefault(settings.Root)
		}),
	)
}

// LoadSettings reads the settings document at join(root, path) through the file
// or HTTP transport, chosen by root's scheme, and runs it through the config pipeline.
func LoadSettings(ctx context.Context, root, path string) (*Settings, error) {
	docFetcher, err := fetcher.Load(ctx, documentLoader(root, path), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	slog.Debug("settings document loaded", "location", docFetcher.Location())

	var settings Settings

	err = config.Load(&settings, SettingsPath, yamlparser.NewParser(), docFetcher)
	if err != nil {
		return nil, err //nolint:wrapcheck // config errors are already descriptive
	}

	return &settings, nil
}

// DocumentModule reads the settings document at join(root, path) while the
// container is built and provides the parsed *Settings together with the
// loader Factory, Config and default *loader.Loader it describes.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func DocumentModule(root, path string) fx.Option {
	return fx.Module("settings.document",
		fx.Provide(
			fx.Annotate(
				fetcher.NewFetcher(documentLoader(root, path), path),
				fx.As(fx.Self()),
				fx.As(new(config.DataFetcher)),
			),
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
			config.Provider(new(Settings), SettingsPath),
			func(settings *Settings) (loader.Factory, error) {
				return settings.NewFactory()
			},
			func(factory loader.Factory) loader.Config {
				return loader.Config{Factory: factory}
			},
			func(cfg loader.Config, settings *Settings) (*loader.Loader, error) {
				return cfg.NewDefault(settings.Root)
			},
		),
		fx.Invoke(func(f *fetcher.Fetcher, settings *Settings) {
			slog.Info("settings document loaded",
				"location", f.Location(),
				"root", settings.Root,
				"transport", settings.Transport,
			)
		}),
	)
}

// documentLoader picks the transport for a settings document by its scheme.
func documentLoader(root, path string) *loader.Loader {
	var transport loader.Transport = filetransport.NewTransport()
	if isHTTP(loader.Join(root, path)) {
		transport = httptransport.NewTransport(httptransport.WithContentType("application/yaml"))
	}

	return loader.New(root, transport)
}

func isHTTP(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
