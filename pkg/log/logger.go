package log

// Logger is the structured logging interface used throughout hitship.
// Implementations can wrap zerolog, zap, slog or any other backend; the
// library itself defaults to the no-op logger.
type Logger interface {
	// Debug logs operational trace messages (enqueue, send).
	Debug(msg string, fields ...Field)

	// Info logs informational messages.
	Info(msg string, fields ...Field)

	// Warn logs diagnostics such as unsupported parameter keys.
	Warn(msg string, fields ...Field)

	// Error logs failures.
	Error(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with an arbitrary value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
