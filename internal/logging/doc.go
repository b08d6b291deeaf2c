// Package logging builds the slog loggers used across the dispatcher.
//
// Two output formats are supported: a compact console format for interactive
// use (with ANSI colors when attached to a terminal) and structured JSON for
// log shipping. Attr helpers keep attribute keys consistent between
// components; NewNop supplies a silent logger for tests.
package logging
