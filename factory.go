package loader

// Factory creates a Loader for a root location.
type Factory func(root string) *Loader

// NewFactory returns a Factory whose loaders all share transport and opts.
func NewFactory(transport Transport, opts ...Option) Factory {
	return func(root string) *Loader {
		return New(root, transport, opts...)
	}
}

// Config carries the Factory used wherever default loaders are created.
// Replacing Factory affects only loaders created afterwards.
type Config struct {
	Factory Factory
}

// NewDefault creates a Loader for root with the configured Factory.
func (c Config) NewDefault(root string) (*Loader, error) {
	if c.Factory == nil {
		return nil, ErrNoFactory
	}

	return c.Factory(root), nil
}
