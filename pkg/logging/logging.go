package logging

// DebugLogger is the minimal logger most services need.
type DebugLogger interface {
	Debug(args ...interface{})
}

// InfoLogger logs informational messages.
type InfoLogger interface {
	Info(args ...interface{})
}

// ErrorLogger logs errors.
type ErrorLogger interface {
	Error(args ...interface{})
}

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	DebugLogger
	InfoLogger
	ErrorLogger
	Warn(args ...interface{})
}
