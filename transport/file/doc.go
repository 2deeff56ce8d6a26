// Package file provides a filesystem loader.Transport.
//
// The loader's root is a directory, optionally written as a "file://" URL.
// Each request opens the joined path read-only and hands the open file back
// as the response body; the loader closes it. Files have no status code, so
// responses always report status 0 and only transport errors can fail a
// fetch before the body is read.
//
// Usage:
//
//	l := loader.New("/srv/tiles", filetransport.NewTransport())
//	err := l.Load(ctx, "manifest.json")
//
// Error Handling:
//   - Open returns an error if the path cannot be stat'ed or opened
//   - Errors include the cleaned path for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
