// Package logging builds the log/slog loggers used by the srcfg parser.
// Output is JSON by default; the text handler is available for terminals.
package logging
