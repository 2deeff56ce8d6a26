package loader

import "go.uber.org/fx"

// NewModule creates an Fx module providing a Factory and a Config built from
// the Transport available in the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("loader",
		fx.Provide(func(transport Transport) Factory {
			return NewFactory(transport, opts...)
		}),
		fx.Provide(func(factory Factory) Config {
			return Config{Factory: factory}
		}),
	)
}
