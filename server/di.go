package server

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named asset server.
// The name is used as both the module name and the DI named tag for Config and *Server.
// If any options are passed, the module supplies Config from them.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(tag)),
		))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg Config) (*Server, error) {
					srv, err := New(name, cfg, func() {
						shutdownErr := shutdowner.Shutdown()
						if shutdownErr != nil {
							slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
						}
					})
					if err != nil {
						return nil, err
					}

					lifecycle.Append(fx.Hook{
						OnStart: srv.Start,
						OnStop:  srv.Stop,
					})

					return srv, nil
				},
				fx.ParamTags("", "", tag),
				fx.ResultTags(tag),
			),
		),
		fx.Invoke(fx.Annotate(func(*Server) {}, fx.ParamTags(tag))),
	)

	return fx.Module(name, moduleOpts...)
}
