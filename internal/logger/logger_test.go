package logger_test

import (
	"bytes"
	"stackvm/internal/logger"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewPlain(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, true)
	l.Error("Assertion failed", "message", "boom")

	got := buf.String()
	for _, want := range []string{"STACKVM", "Assertion failed", "message", "boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestInitLevels(t *testing.T) {
	prev := log.Default()
	defer log.SetDefault(prev)

	tests := []struct {
		verbose, trace bool
		expected       log.Level
	}{
		{false, false, log.WarnLevel},
		{true, false, log.InfoLevel},
		{false, true, log.DebugLevel},
		{true, true, log.DebugLevel},
	}

	for _, test := range tests {
		logger.Init(test.verbose, test.trace, true)
		if got := log.GetLevel(); got != test.expected {
			t.Errorf("Init(%v, %v): expected level %s, got %s", test.verbose, test.trace, test.expected, got)
		}
	}
}
