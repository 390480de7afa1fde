// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a human-oriented console handler and
// plain JSON. Helpers mirror the slog attribute constructors so call sites
// stay terse, and NewNop provides a discard logger for tests.
package logging
