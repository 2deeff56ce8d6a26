// Package http provides the HTTP loader.Transport.
//
// Every request is a GET carrying a Content-Type header (application/json by
// default). The transport reports the status code, the effective URL after
// redirects and the declared content length, and hands the body back unread;
// status validation, size limits, buffering and closing the body are done by
// the loader. Timeouts come from the request context, which the loader bounds
// with its own fetch timeout.
//
// Usage:
//
//	l := loader.New("http://example.test/tiles/", httptransport.NewTransport())
//	err := l.Load(ctx, "manifest.json")
package http
