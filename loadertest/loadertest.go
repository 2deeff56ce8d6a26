// Package loadertest provides a scripted loader.Transport that records every
// request and counts how often response bodies are read and closed.
package loadertest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	loader "github.com/0xalexb/hjarta-loader"
)

// Reply scripts the response for a target.
type Reply struct {
	Status int
	Body   []byte
	// ContentLength is the declared size. Zero means len(Body); use -1 for unknown.
	ContentLength int64
	// URL overrides the effective URL. Empty means the request target.
	URL string
	// Err makes Open fail without a response.
	Err error
}

// Transport is a loader.Transport double. It is safe for concurrent use.
type Transport struct {
	mu       sync.Mutex
	replies  map[string]Reply
	fallback Reply
	calls    []string

	releases  atomic.Int64
	bytesRead atomic.Int64
}

// NewTransport returns a Transport that answers 404 for unscripted targets.
func NewTransport() *Transport {
	return &Transport{
		replies:  make(map[string]Reply),
		fallback: Reply{Status: http.StatusNotFound},
	}
}

// Handle scripts reply for target.
func (t *Transport) Handle(target string, reply Reply) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.replies[target] = reply

	return t
}

// Fallback sets the reply for targets without a scripted reply.
func (t *Transport) Fallback(reply Reply) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.fallback = reply

	return t
}

// Open implements loader.Transport.
func (t *Transport) Open(ctx context.Context, target string) (*loader.Response, error) {
	t.mu.Lock()

	t.calls = append(t.calls, target)

	reply, ok := t.replies[target]
	if !ok {
		reply = t.fallback
	}

	t.mu.Unlock()

	err := ctx.Err()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if reply.Err != nil {
		return nil, reply.Err
	}

	length := reply.ContentLength
	if length == 0 {
		length = int64(len(reply.Body))
	}

	url := reply.URL
	if url == "" {
		url = target
	}

	return &loader.Response{
		StatusCode:    reply.Status,
		URL:           url,
		ContentLength: length,
		Body:          &body{reader: bytes.NewReader(reply.Body), owner: t},
	}, nil
}

// Calls returns the targets requested so far, in order.
func (t *Transport) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.calls...)
}

// Releases returns how many response bodies were closed.
func (t *Transport) Releases() int {
	return int(t.releases.Load())
}

// BytesRead returns how many body bytes were consumed across all responses.
func (t *Transport) BytesRead() int64 {
	return t.bytesRead.Load()
}

type body struct {
	reader io.Reader
	owner  *Transport
}

func (b *body) Read(p []byte) (int, error) {
	n, err := b.reader.Read(p)
	b.owner.bytesRead.Add(int64(n))

	return n, err //nolint:wrapcheck
}

func (b *body) Close() error {
	b.owner.releases.Add(1)

	return nil
}
