package stackvm_test

import (
	"errors"
	"math"
	"stackvm/pkg/stackvm"
	"testing"
)

type recordingOutput struct {
	values    []stackvm.Value
	snapshots [][]stackvm.Value
	err       error
}

func (o *recordingOutput) Value(v stackvm.Value) error {
	o.values = append(o.values, v)
	return o.err
}

func (o *recordingOutput) Stack(values []stackvm.Value) error {
	o.snapshots = append(o.snapshots, values)
	return o.err
}

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) AssertFailed(message string) {
	r.messages = append(r.messages, message)
}

func newMachine(t *testing.T, values ...stackvm.Value) (*stackvm.Machine, *recordingOutput, *recordingReporter) {
	t.Helper()

	out := &recordingOutput{}
	rep := &recordingReporter{}
	m := stackvm.New(stackvm.WithOutput(out), stackvm.WithErrorReporter(rep))

	for _, v := range values {
		if err := m.Push(v); err != nil {
			t.Fatalf("push %v: %v", v, err)
		}
	}

	return m, out, rep
}

func num(f float64) stackvm.Value  { return stackvm.Number(f) }
func text(s string) stackvm.Value  { return stackvm.Text(s) }
func boolean(b bool) stackvm.Value { return stackvm.Boolean(b) }

func expectStack(t *testing.T, m *stackvm.Machine, expected ...stackvm.Value) {
	t.Helper()

	got := m.Values()
	if len(got) != len(expected) {
		t.Fatalf("expected stack %s, got %s", stackvm.FormatStack(expected), stackvm.FormatStack(got))
	}
	for i := range expected {
		if !sameValue(got[i], expected[i]) {
			t.Fatalf("expected stack %s, got %s", stackvm.FormatStack(expected), stackvm.FormatStack(got))
		}
	}
}

// sameValue is Equal with NaN matching NaN.
func sameValue(a, b stackvm.Value) bool {
	if a.Kind == stackvm.KindNumber && b.Kind == stackvm.KindNumber && math.IsNaN(a.Num) && math.IsNaN(b.Num) {
		return true
	}
	eq, ok := a.Equal(b)
	return ok && eq
}

func expectCode(t *testing.T, err error, code stackvm.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	got, ok := stackvm.CodeOf(err)
	if !ok {
		t.Fatalf("expected %s error, got untyped %v", code, err)
	}
	if got != code {
		t.Fatalf("expected %s, got %s (%v)", code, got, err)
	}

	var sentinel error
	switch code {
	case stackvm.StackUnderflow:
		sentinel = stackvm.ErrStackUnderflow
	case stackvm.TypeMismatch:
		sentinel = stackvm.ErrTypeMismatch
	case stackvm.AssertFailed:
		sentinel = stackvm.ErrAssertFailed
	case stackvm.NotImplemented:
		sentinel = stackvm.ErrNotImplemented
	}
	if sentinel != nil && !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is(%v, %v)", err, sentinel)
	}
}
