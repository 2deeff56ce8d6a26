// Package yaml provides the config.Parser for YAML and JSON documents.
//
// JSON is a subset of YAML, so the same parser decodes loader settings files
// and JSON manifests fetched by a loader. Parsing uses github.com/goccy/go-yaml;
// colon-separated paths (e.g., "loader:timeout_ms") are converted to YAML path
// syntax (e.g., "$.loader.timeout_ms") and resolved before decoding.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.Strict())
//	var settings Settings
//	err := parser.Parse(data, &settings, "loader")
//
// Path Conversion:
//   - Empty path "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested path "server:assets" -> "$.server.assets"
package yaml
