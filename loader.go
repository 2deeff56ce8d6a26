package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
)

// Response is what a Transport returns for one request.
type Response struct {
	// StatusCode is the transport's status, or 0 if it has no such concept.
	StatusCode int
	// URL is the effective location that answered, after any redirects.
	URL string
	// ContentLength is the declared body size, or -1 if unknown.
	ContentLength int64
	// Body is closed by the Loader.
	Body io.ReadCloser
}

// Transport performs a single request/response cycle against target.
type Transport interface {
	Open(ctx context.Context, target string) (*Response, error)
}

// Loader fetches resources relative to a fixed root and keeps the last payload in its Buffer.
//
// A Loader runs one fetch at a time. The Buffer is written before a fetch
// reports completion, so it may be read once Fetch returns or a Task is done.
type Loader struct {
	root      string
	transport Transport
	options   Options
	buffer    *Buffer
}

// New creates a Loader for root that uses transport for every request.
func New(root string, transport Transport, opts ...Option) *Loader {
	return &Loader{
		root:      root,
		transport: transport,
		options:   buildOptions(opts),
		buffer:    &Buffer{},
	}
}

// Root returns the location every relative path is resolved against.
func (l *Loader) Root() string {
	return l.root
}

// Buffer returns the payload of the last fetch. It is never nil.
func (l *Loader) Buffer() *Buffer {
	return l.buffer
}

// Fetch blocks until the resource at Join(root, relativePath) is buffered.
// On failure the buffer is left empty.
func (l *Loader) Fetch(ctx context.Context, root, relativePath string) error {
	data, err := l.retrieve(ctx, Join(root, relativePath))
	if err != nil {
		l.buffer.set(nil)

		return err
	}

	l.buffer.set(data)

	return nil
}

// FetchAsync dispatches a fetch of Join(root, relativePath) and returns immediately.
// out is called exactly once; the returned Task completes after it returns.
// A nil out fails with ErrConfiguration before any request is made.
func (l *Loader) FetchAsync(ctx context.Context, root, relativePath string, out Output) (*Task, error) {
	if !validOutput(out) {
		return nil, ErrConfiguration
	}

	return l.dispatch(ctx, Join(root, relativePath), out), nil
}

// FetchText is FetchAsync with a TextOutput.
func (l *Loader) FetchText(ctx context.Context, root, relativePath string, onText TextOutput) (*Task, error) {
	return l.FetchAsync(ctx, root, relativePath, onText)
}

// FetchBytes is FetchAsync with a BytesOutput.
func (l *Loader) FetchBytes(ctx context.Context, root, relativePath string, onBytes BytesOutput) (*Task, error) {
	return l.FetchAsync(ctx, root, relativePath, onBytes)
}

// Load fetches relativePath under the loader's root, blocking until done.
func (l *Loader) Load(ctx context.Context, relativePath string) error {
	if relativePath == "" {
		return fmt.Errorf("load: %w", ErrArgumentNull)
	}

	return l.Fetch(ctx, l.root, relativePath)
}

// LoadAsync fetches relativePath under the loader's root without blocking.
// When the Task is done the buffer holds the payload, or is empty if the
// fetch failed or returned nothing.
func (l *Loader) LoadAsync(ctx context.Context, relativePath string) (*Task, error) {
	if relativePath == "" {
		return nil, fmt.Errorf("load: %w", ErrArgumentNull)
	}

	return l.FetchBytes(ctx, l.root, relativePath, func(data []byte, err error) {
		if err != nil || len(data) == 0 {
			l.buffer.set(nil)

			return
		}

		l.buffer.Reset(data)
	})
}

func (l *Loader) dispatch(ctx context.Context, target string, out Output) *Task {
	task := newTask()

	go func() {
		data, err := l.retrieve(ctx, target)
		out.deliver(data, err)
		task.complete(err)
	}()

	return task
}

// retrieve runs one request/response cycle and returns the whole body.
func (l *Loader) retrieve(ctx context.Context, target string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.options.Timeout)
	defer cancel()

	resp, err := l.transport.Open(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: no response for %q", ErrNetwork, target)
	}

	defer release(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		slog.Error("response status invalid", "status", resp.StatusCode, "url", resp.URL)

		return nil, &StatusError{Code: resp.StatusCode, URL: resp.URL}
	}

	limit := l.options.MaxPayloadSize

	if resp.ContentLength > limit {
		slog.Error("payload too large", "url", resp.URL, "size", resp.ContentLength, "limit", limit)

		return nil, &PayloadTooLargeError{Size: resp.ContentLength, Limit: limit}
	}

	if resp.Body == nil {
		return []byte{}, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, min(limit, math.MaxInt64-1)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrNetwork, resp.URL, err)
	}

	if int64(len(data)) > limit {
		slog.Error("payload too large", "url", resp.URL, "limit", limit)

		return nil, &PayloadTooLargeError{Size: -1, Limit: limit}
	}

	slog.Debug("fetched", "target", target, "url", resp.URL, "size", len(data))

	return data, nil
}

// release closes the response body. Every retrieve defers it exactly once.
func release(resp *Response) {
	if resp == nil || resp.Body == nil {
		return
	}

	err := resp.Body.Close()
	if err != nil {
		slog.Warn("closing response", "url", resp.URL, "error", err)
	}
}
