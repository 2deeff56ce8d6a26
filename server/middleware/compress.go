package middleware

import (
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// MinCompressSize is the smallest response body that gets gzip-compressed.
const MinCompressSize = 256

// Compress returns a middleware that gzip-encodes responses for clients that
// accept it. Bodies under MinCompressSize and already-compressed content types
// such as tile images pass through untouched.
func Compress() func(http.Handler) http.Handler {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(MinCompressSize))
	if err != nil {
		slog.Error("gzip wrapper unavailable, serving uncompressed", "error", err)

		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return wrap(next)
	}
}
