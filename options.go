package loader

import (
	"math"
	"time"
)

// DefaultTimeout bounds every fetch, blocking or asynchronous.
const DefaultTimeout = 5000 * time.Millisecond

// MaxPayloadSize is the largest payload a Loader buffers by default.
const MaxPayloadSize int64 = math.MaxInt32

// Options holds the tunables of a Loader.
type Options struct {
	Timeout        time.Duration
	MaxPayloadSize int64
}

// Option defines a function type for applying loader options.
type Option func(*Options)

// WithTimeout sets the per-fetch timeout. Non-positive values keep DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithMaxPayloadSize sets the largest payload accepted. Non-positive values keep MaxPayloadSize.
func WithMaxPayloadSize(size int64) Option {
	return func(opts *Options) {
		opts.MaxPayloadSize = size
	}
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() (changed bool) {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
		changed = true
	}

	if o.MaxPayloadSize <= 0 {
		o.MaxPayloadSize = MaxPayloadSize
		changed = true
	}

	return changed
}

func buildOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	options.SetDefaults()

	return options
}
