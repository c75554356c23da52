// Package logging builds the slog loggers used by the settings accessor.
// Output is JSON by default; a text handler can be selected for local development.
package logging
