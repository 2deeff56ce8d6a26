package server

// Option defines a function type for configuring an asset server.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithDir sets the directory to serve.
func WithDir(dir string) Option {
	return func(cfg *Config) {
		cfg.Dir = dir
	}
}
