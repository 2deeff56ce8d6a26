// Package logging builds the slog.Logger used by the loader, the asset server and the CLI.
// JSON output suits services run under the Fx app; text output suits interactive CLI use.
package logging
