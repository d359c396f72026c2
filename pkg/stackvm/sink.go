package stackvm

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Output receives what print and printStack emit.
type Output interface {
	Value(v Value) error
	Stack(values []Value) error
}

// ErrorReporter receives the message of a failed assertion.
type ErrorReporter interface {
	AssertFailed(message string)
}

type writerOutput struct {
	w io.Writer
}

// NewWriterOutput returns an Output that writes one line per value or snapshot to w.
func NewWriterOutput(w io.Writer) Output {
	return &writerOutput{w: w}
}

func (o *writerOutput) Value(v Value) error {
	_, err := fmt.Fprintln(o.w, v.String())
	return err
}

func (o *writerOutput) Stack(values []Value) error {
	_, err := fmt.Fprintln(o.w, FormatStack(values))
	return err
}

type logReporter struct {
	logger *log.Logger
}

// NewLogReporter returns an ErrorReporter that logs failed assertions at error level.
// A nil logger means the default logger.
func NewLogReporter(logger *log.Logger) ErrorReporter {
	if logger == nil {
		logger = log.Default()
	}
	return &logReporter{logger: logger}
}

func (r *logReporter) AssertFailed(message string) {
	r.logger.Error("Assertion failed", "message", message)
}
