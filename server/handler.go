package server

import (
	"net/http"

	"github.com/0xalexb/hjarta-loader/server/middleware"
)

// NewAssetHandler serves the files under dir, wrapped in request ID, logging,
// recovery and compression middleware, outermost first.
func NewAssetHandler(dir string) http.Handler {
	return Chain(http.FileServer(http.Dir(dir)),
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.Compress(),
	)
}

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}
