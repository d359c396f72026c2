package stackvm

import (
	"bufio"
	"io"
	"os"

	"stackvm/pkg/stack"

	"github.com/charmbracelet/log"
)

const defaultCapacity = 1000

// Machine owns one operand stack and the collaborators its operations talk to.
// A Machine is not safe for concurrent use; give each execution context its own.
type Machine struct {
	st *stack.Stack[Value] // operand stack

	out      Output        // sink for print and printStack
	reporter ErrorReporter // sink for failed assertions
	in       io.Reader     // line source for readline
	reader   *bufio.Reader // lazily wraps in

	logger   *log.Logger // optional operation trace
	capacity int         // initial stack capacity
}

type Option func(*Machine)

// WithOutput sets the sink for print and printStack
func WithOutput(o Output) Option {
	return func(m *Machine) { m.out = o }
}

// WithErrorReporter sets the sink for failed assertion messages
func WithErrorReporter(r ErrorReporter) Option {
	return func(m *Machine) { m.reporter = r }
}

// WithInput sets the line source for readline
func WithInput(r io.Reader) Option {
	return func(m *Machine) { m.in = r }
}

// WithLogger enables a debug trace of every executed operation
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithCapacity sets the initial capacity of the operand stack
func WithCapacity(n int) Option {
	return func(m *Machine) { m.capacity = n }
}

// New creates a Machine with an empty operand stack
func New(opts ...Option) *Machine {
	m := &Machine{
		capacity: defaultCapacity,
	}

	for _, o := range opts {
		o(m)
	}

	if m.capacity < 0 {
		m.capacity = 0
	}
	m.st = stack.NewStack[Value](m.capacity)

	if m.out == nil {
		m.out = NewWriterOutput(os.Stdout)
	}
	if m.reporter == nil {
		m.reporter = NewLogReporter(nil)
	}
	if m.in == nil {
		m.in = os.Stdin
	}

	return m
}

// Len returns the current stack depth
func (m *Machine) Len() int {
	return m.st.Size()
}

// Values returns a copy of the stack, bottom first
func (m *Machine) Values() []Value {
	return m.st.Array()
}

// Peek returns the top value without removing it
func (m *Machine) Peek() (Value, error) {
	if err := m.has("peek", 1); err != nil {
		return Value{}, err
	}
	return m.read(-1), nil
}

// Reset empties the stack
func (m *Machine) Reset() {
	m.st.Clear()
}

// Push appends a literal value
func (m *Machine) Push(v Value) error {
	if !v.Valid() {
		return newError(TypeMismatch, "push", "cannot push %s value", v.Kind)
	}
	m.st.Push(v)
	return nil
}

// Exec runs the operation registered under name
func (m *Machine) Exec(name string) error {
	op, ok := Lookup(name)
	if !ok {
		return newError(NotImplemented, name, "unknown operation")
	}

	err := op(m)
	if m.logger != nil {
		if err != nil {
			m.logger.Debug("Operation failed", "op", name, "depth", m.Len(), "error", err)
		} else {
			m.logger.Debug("Operation", "op", name, "depth", m.Len())
		}
	}

	return err
}

// has checks that at least n values are on the stack
func (m *Machine) has(op string, n int) error {
	if m.st.Size() < n {
		return newError(StackUnderflow, op, "need %d values, have %d", n, m.st.Size())
	}
	return nil
}

// read returns the value at a top-relative offset; callers check depth first
func (m *Machine) read(offset int) Value {
	v, _ := m.st.At(offset)
	return v
}

// store replaces the value at a top-relative offset; offset 0 appends
func (m *Machine) store(offset int, v Value) {
	m.st.Set(offset, v)
}

func (m *Machine) readNumber(op string, offset int) (float64, error) {
	v := m.read(offset)
	if v.Kind != KindNumber {
		return 0, newError(TypeMismatch, op, "expected number, got %s", v.Kind)
	}
	return v.Num, nil
}

func (m *Machine) readText(op string, offset int) (string, error) {
	v := m.read(offset)
	if v.Kind != KindText {
		return "", newError(TypeMismatch, op, "expected text, got %s", v.Kind)
	}
	return v.Str, nil
}

func (m *Machine) drop(n int) {
	m.st.Truncate(n)
}

func (m *Machine) lineReader() *bufio.Reader {
	if m.reader == nil {
		m.reader = bufio.NewReader(m.in)
	}
	return m.reader
}
