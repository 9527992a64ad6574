package core

// Logger is the interface for logging operations. The core pipeline itself
// never logs; callers that compose it (the facade, the history store) take
// a Logger so the library does not force a logging backend on embedders.
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, keyvals ...any)
	// Info logs an informational message
	Info(msg string, keyvals ...any)
	// Warn logs a warning message
	Warn(msg string, keyvals ...any)
	// Error logs an error message
	Error(msg string, keyvals ...any)
	// With returns a new logger with additional key-value pairs
	With(keyvals ...any) Logger
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keyvals ...any) {}
func (nopLogger) Info(msg string, keyvals ...any)  {}
func (nopLogger) Warn(msg string, keyvals ...any)  {}
func (nopLogger) Error(msg string, keyvals ...any) {}

func (n nopLogger) With(keyvals ...any) Logger { return n }

// NopLogger returns a logger that discards all messages.
func NopLogger() Logger {
	return nopLogger{}
}
