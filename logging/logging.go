package logging

import (
	"fmt"
	"io"
	"log"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "TRACE"
	}
}

// Logger writes levelled, printf-style messages, discarding
// anything below its configured level
type Logger struct {
	level int
	out   *log.Logger
}

// New creates a Logger writing to w at the given minimum level
func New(w io.Writer, level int) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Logf logs a message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("%s: %s", LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Tracef logs a message at TraceLevel
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Logf(TraceLevel, format, args...)
}

// Debugf logs a message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(DebugLevel, format, args...)
}

// Infof logs a message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(InfoLevel, format, args...)
}

// Warnf logs a message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(WarnLevel, format, args...)
}

// Errorf logs a message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(ErrorLevel, format, args...)
}
