package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	log := NewLogger()
	assert.NotNil(t, log)
	assert.IsType(t, &zerologLogger{}, log)
}

func TestNewLoggerWithLevel(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		output := captureOutput(func() {
			log := NewLoggerWithLevel("debug")
			log.Debug("debug message")
		})
		assert.Contains(t, output, "debug message")
		assert.Contains(t, output, `"level":"debug"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		output := captureOutput(func() {
			log := NewLoggerWithLevel("nonsense")
			log.Debug("should be filtered")
			log.Info("should appear")
		})
		assert.NotContains(t, output, "should be filtered")
		assert.Contains(t, output, "should appear")
	})
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name  string
		logFn func(Logger, string)
		level string
	}{
		{"info", func(l Logger, msg string) { l.Info(msg) }, "info"},
		{"warn", func(l Logger, msg string) { l.Warn(msg) }, "warn"},
		{"error", func(l Logger, msg string) { l.Error(msg) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(func() {
				log := NewLoggerWithLevel("debug")
				tt.logFn(log, tt.name+" message")
			})
			assert.Contains(t, output, tt.name+" message")
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
		})
	}
}

func TestWithField(t *testing.T) {
	output := captureOutput(func() {
		log := NewLoggerWithLevel("info")
		log.WithField("trainee_id", "40").Info("field message")
	})

	assert.Contains(t, output, "field message")
	assert.Contains(t, output, `"trainee_id":"40"`)
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	output := captureOutput(func() {
		log := NewLoggerWithLevel("info")
		log.WithField("scoped", "yes")
		log.Info("parent message")
	})

	assert.Contains(t, output, "parent message")
	assert.NotContains(t, output, "scoped")
}

func TestWithFields(t *testing.T) {
	output := captureOutput(func() {
		log := NewLoggerWithLevel("info")
		log.WithFields(map[string]interface{}{
			"queue": "ltft-updated",
			"count": 3,
		}).Info("fields message")
	})

	assert.Contains(t, output, "fields message")
	assert.Contains(t, output, `"queue":"ltft-updated"`)
	assert.Contains(t, output, `"count":3`)
}

func TestTestLogger(t *testing.T) {
	log := NewTestLogger(t)
	assert.NotNil(t, log)

	// Exercises every method; output goes to the test log.
	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")
	assert.Equal(t, log, log.WithField("k", "v"))
	assert.Equal(t, log, log.WithFields(map[string]interface{}{"k": "v"}))
}
