// Package loader fetches resources relative to a fixed root location.
//
// A Loader is constructed once per root (a base URL or a base directory) and
// reused across many fetches. Each fetch joins the root with a relative path,
// asks a Transport for the response, validates it and buffers the body:
//
//	l := loader.New("http://example.test/tiles/", httptransport.NewTransport())
//	if err := l.Load(ctx, "manifest.json"); err != nil {
//	    // *StatusError, *PayloadTooLargeError, ErrNetwork ...
//	}
//	data := l.Buffer().Bytes()
//
// # Blocking and asynchronous fetches
//
// Fetch and Load block until the body is buffered. FetchAsync, FetchText,
// FetchBytes and LoadAsync dispatch the request on a goroutine and return a
// Task right away. The Output callback runs exactly once with either data or
// an error, never both, and the Task completes after the callback returns.
//
// # Transports
//
// A Transport performs one request/response cycle. The HTTP transport lives in
// transport/http, the filesystem transport in transport/file and a recording
// double in loadertest. The response body is always closed by the Loader,
// exactly once, on every exit path.
//
// # Default loaders
//
// Code that creates loaders on demand takes a Factory (or a Config carrying
// one) instead of naming a concrete transport, so tests can inject a double.
package loader
