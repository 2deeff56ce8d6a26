// Package fetcher provides a config.DataFetcher that reads its document through a loader.Loader.
//
// The document is fetched once, at construction time, and cached, so every
// call to Fetch returns the same data. Which transport the loader uses decides
// where the document comes from: a local settings file with the file
// transport, or a remote one with the HTTP transport.
//
// Usage:
//
//	l := loader.New("/etc/tilefetch", filetransport.NewTransport())
//	f, err := fetcher.NewFetcher(l, "settings.yaml")()
//	if err != nil {
//	    // Handle error: missing file, bad status, payload too large, etc.
//	}
//	data, err := f.Fetch()
//
// NewFetcher returns a constructor so an Fx container decides when the read
// happens; app.DocumentModule provides it as the config.DataFetcher behind
// the loader settings.
package fetcher
