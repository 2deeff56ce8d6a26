package http

import (
	"context"
	"fmt"
	"net/http"

	loader "github.com/0xalexb/hjarta-loader"

	"go.uber.org/fx"
)

// DefaultContentType is sent with every request unless overridden.
const DefaultContentType = "application/json"

// Transport implements loader.Transport over net/http.
type Transport struct {
	client      *http.Client
	contentType string
	header      http.Header
}

// Option defines a function type for configuring a Transport.
type Option func(*Transport)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(t *Transport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithContentType sets the Content-Type request header.
func WithContentType(contentType string) Option {
	return func(t *Transport) {
		t.contentType = contentType
	}
}

// WithHeader adds a request header sent with every request.
func WithHeader(key, value string) Option {
	return func(t *Transport) {
		t.header.Add(key, value)
	}
}

// NewTransport creates a Transport. Without WithClient it uses a client with
// no timeout of its own; the loader's context deadline applies instead.
func NewTransport(opts ...Option) *Transport {
	t := &Transport{
		client: &http.Client{ //nolint:exhaustruct // zero-value defaults are fine
			Timeout: 0, // Handled by context
		},
		contentType: DefaultContentType,
		header:      make(http.Header),
	}

	for _, apply := range opts {
		apply(t)
	}

	return t
}

// Open issues a GET request for target.
func (t *Transport) Open(ctx context.Context, target string) (*loader.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request %q: %w", target, err)
	}

	for key, values := range t.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if t.contentType != "" {
		req.Header.Set("Content-Type", t.contentType)
	}

	resp, err := t.client.Do(req) //nolint:gosec // G704: target is built from the loader's configured root
	if err != nil {
		return nil, fmt.Errorf("GET %q: %w", target, err)
	}

	effectiveURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		effectiveURL = resp.Request.URL.String()
	}

	return &loader.Response{
		StatusCode:    resp.StatusCode,
		URL:           effectiveURL,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// Module creates an Fx module providing a Transport as the container's loader.Transport.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	return fx.Module("transport.http",
		fx.Provide(
			fx.Annotate(
				func() *Transport { return NewTransport(opts...) },
				fx.As(new(loader.Transport)),
			),
		),
	)
}
