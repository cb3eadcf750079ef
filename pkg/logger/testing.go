package logger

import (
	"testing"
)

// TestLogger writes log lines through testing.T so they show up alongside
// the test output. A nil T discards everything.
type TestLogger struct {
	T *testing.T
}

// NewTestLogger creates a logger backed by the given test.
func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{T: t}
}

func (l *TestLogger) Debug(msg string) {
	if l.T != nil {
		l.T.Logf("[DEBUG] %s", msg)
	}
}

func (l *TestLogger) Info(msg string) {
	if l.T != nil {
		l.T.Logf("[INFO] %s", msg)
	}
}

func (l *TestLogger) Warn(msg string) {
	if l.T != nil {
		l.T.Logf("[WARN] %s", msg)
	}
}

func (l *TestLogger) Error(msg string) {
	if l.T != nil {
		l.T.Logf("[ERROR] %s", msg)
	}
}

func (l *TestLogger) Fatal(msg string) {
	if l.T != nil {
		l.T.Logf("[FATAL] %s", msg)
	}
}

// WithField returns the logger unchanged; field context is not asserted on.
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l
}

// WithFields returns the logger unchanged.
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return l
}
