// Package config turns a fetched document into a typed, defaulted and validated struct.
//
// The package uses an interface-based design with four extension points:
//   - DataFetcher: retrieves the raw document (see config/fetcher, which reads it through a loader)
//   - Parser: decodes the document into the target, navigating to a section first
//   - Defaulter: fills unset fields after parsing
//   - Validator: rejects unusable values after defaults are applied
//
// # Path Navigation
//
// Provider takes a colon-separated path selecting the section to decode:
//
//	"loader"            -> doc["loader"]
//	"server:assets"     -> doc["server"]["assets"]
//	""                  -> entire document
//
// # Errors
//
// Every failure wraps one of ErrFetch, ErrParse or ErrValidate, so callers can
// tell a missing settings file from a malformed or rejected one.
package config
