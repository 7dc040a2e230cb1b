package dlog

import (
	"bytes"
	"testing"

	"github.com/Cycloctane/xzspider2/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"none", LevelNone},
		{"error", LevelError},
		{"warn", LevelWarn},
		{"info", LevelInfo},
		{"debug", LevelDebug},
		{"bogus", LevelNone},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.expected, ParseLevel(tt.name))
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	l := &Logger{writer: &out, level: LevelInfo}

	l.Debug("not visible")
	testutil.AssertEqual(t, 0, out.Len())

	l.Info("visible")
	testutil.AssertContains(t, out.String(), "INFO|visible")

	l.Error("also visible")
	testutil.AssertContains(t, out.String(), "ERROR|also visible")
}

func TestLoggerJoinsArguments(t *testing.T) {
	var out bytes.Buffer
	l := &Logger{writer: &out, level: LevelDebug}

	message := l.Info("session", 42, "records")
	testutil.AssertEqual(t, "session|42|records", message)
	testutil.AssertContains(t, out.String(), "|INFO|session|42|records")
}

func TestLoggerReturnsMessageWhenSuppressed(t *testing.T) {
	var out bytes.Buffer
	l := &Logger{writer: &out, level: LevelNone}

	message := l.Warn("quiet", "run")
	testutil.AssertEqual(t, "quiet|run", message)
	testutil.AssertEqual(t, 0, out.Len())
}
