package fdict

import "time"

// LogEvent describes one lookup for logging.
type LogEvent struct {
	Key      string
	Value    string
	Duration time.Duration
	Err      error
}

// Logger records lookup events.
type Logger interface {
	LogLookup(LogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(LogEvent)

// LogLookup implements Logger.
func (f LoggerFunc) LogLookup(event LogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogLookup(LogEvent) {}
