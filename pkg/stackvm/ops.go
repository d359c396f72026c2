package stackvm

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// Drop removes the top value
func (m *Machine) Drop() error {
	if err := m.has("drop", 1); err != nil {
		return err
	}
	m.drop(1)
	return nil
}

// Dup pushes a copy of the top value
func (m *Machine) Dup() error {
	if err := m.has("dup", 1); err != nil {
		return err
	}
	m.store(0, m.read(-1))
	return nil
}

// Over pushes a copy of the value below the top
func (m *Machine) Over() error {
	if err := m.has("over", 2); err != nil {
		return err
	}
	m.store(0, m.read(-2))
	return nil
}

// Swap exchanges the top two values
func (m *Machine) Swap() error {
	if err := m.has("swap", 2); err != nil {
		return err
	}
	a, b := m.read(-2), m.read(-1)
	m.store(-2, b)
	m.store(-1, a)
	return nil
}

// Rot moves the third value from the top to the top: [a b c] becomes [b c a]
func (m *Machine) Rot() error {
	if err := m.has("rot", 3); err != nil {
		return err
	}
	first := m.read(-3)
	m.store(-3, m.read(-2))
	m.store(-2, m.read(-1))
	m.store(-1, first)
	return nil
}

// binaryNumber replaces the two numeric operands on top with fn(second, top)
func (m *Machine) binaryNumber(op string, fn func(a, b float64) Value) error {
	if err := m.has(op, 2); err != nil {
		return err
	}
	a, err := m.readNumber(op, -2)
	if err != nil {
		return err
	}
	b, err := m.readNumber(op, -1)
	if err != nil {
		return err
	}
	m.store(-2, fn(a, b))
	m.drop(1)
	return nil
}

func (m *Machine) Plus() error {
	return m.binaryNumber("plus", func(a, b float64) Value { return Number(a + b) })
}

func (m *Machine) Minus() error {
	return m.binaryNumber("minus", func(a, b float64) Value { return Number(a - b) })
}

func (m *Machine) Times() error {
	return m.binaryNumber("times", func(a, b float64) Value { return Number(a * b) })
}

// Divide follows IEEE 754: a zero divisor yields an infinity or NaN.
func (m *Machine) Divide() error {
	return m.binaryNumber("divide", func(a, b float64) Value { return Number(a / b) })
}

// Modulo is the float remainder, carrying the sign of the dividend.
func (m *Machine) Modulo() error {
	return m.binaryNumber("modulo", func(a, b float64) Value { return Number(math.Mod(a, b)) })
}

// Pow uses math.Pow, so 1 to the NaN and -1 to ±Inf give 1.
func (m *Machine) Pow() error {
	return m.binaryNumber("pow", func(a, b float64) Value { return Number(math.Pow(a, b)) })
}

func (m *Machine) Greater() error {
	return m.binaryNumber("greater", func(a, b float64) Value { return Boolean(a > b) })
}

func (m *Machine) Less() error {
	return m.binaryNumber("less", func(a, b float64) Value { return Boolean(a < b) })
}

// Equals compares two values of the same kind; mixed kinds are a type mismatch
func (m *Machine) Equals() error {
	if err := m.has("equals", 2); err != nil {
		return err
	}
	l, r := m.read(-2), m.read(-1)
	eq, ok := l.Equal(r)
	if !ok {
		return newError(TypeMismatch, "equals", "cannot compare %s with %s", l.Kind, r.Kind)
	}
	m.store(-2, Boolean(eq))
	m.drop(1)
	return nil
}

// And leaves the top value if the one below is truthy, otherwise the one below.
// The result is one of the operands, not a boolean.
func (m *Machine) And() error {
	if err := m.has("and", 2); err != nil {
		return err
	}
	if a := m.read(-2); a.Truthy() {
		m.store(-2, m.read(-1))
	}
	m.drop(1)
	return nil
}

// Or leaves the value below the top if it is truthy, otherwise the top value.
// The result is one of the operands, not a boolean.
func (m *Machine) Or() error {
	if err := m.has("or", 2); err != nil {
		return err
	}
	if a := m.read(-2); !a.Truthy() {
		m.store(-2, m.read(-1))
	}
	m.drop(1)
	return nil
}

func (m *Machine) Not() error {
	if err := m.has("not", 1); err != nil {
		return err
	}
	m.store(-1, Boolean(!m.read(-1).Truthy()))
	return nil
}

func (m *Machine) Increment() error {
	return m.unaryNumber("increment", 1)
}

func (m *Machine) Decrement() error {
	return m.unaryNumber("decrement", -1)
}

func (m *Machine) unaryNumber(op string, delta float64) error {
	if err := m.has(op, 1); err != nil {
		return err
	}
	n, err := m.readNumber(op, -1)
	if err != nil {
		return err
	}
	m.store(-1, Number(n+delta))
	return nil
}

// Join concatenates the display form of the top two values
func (m *Machine) Join() error {
	if err := m.has("join", 2); err != nil {
		return err
	}
	m.store(-2, Text(m.read(-2).String()+m.read(-1).String()))
	m.drop(1)
	return nil
}

// Substring takes [text start end] and leaves the runes from start up to
// max(start, end). Indices are truncated and clamped to the text.
func (m *Machine) Substring() error {
	if err := m.has("substring", 3); err != nil {
		return err
	}
	s, err := m.readText("substring", -3)
	if err != nil {
		return err
	}
	start, err := m.readNumber("substring", -2)
	if err != nil {
		return err
	}
	end, err := m.readNumber("substring", -1)
	if err != nil {
		return err
	}

	runes := []rune(s)
	from := clampIndex(start, len(runes))
	to := clampIndex(math.Max(start, end), len(runes))
	if from > to {
		from, to = to, from
	}

	m.store(-3, Text(string(runes[from:to])))
	m.drop(2)
	return nil
}

// clampIndex maps a numeric index onto [0, n]; NaN counts as 0
func clampIndex(f float64, n int) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= float64(n) {
		return n
	}
	return int(f)
}

// Length replaces a text with its rune count
func (m *Machine) Length() error {
	if err := m.has("length", 1); err != nil {
		return err
	}
	s, err := m.readText("length", -1)
	if err != nil {
		return err
	}
	m.store(-1, Number(float64(utf8.RuneCountInString(s))))
	return nil
}

// ToChar replaces a single-character text with its code point. Characters
// outside the Basic Multilingual Plane are rejected, since FromChar only
// produces 16-bit code units.
func (m *Machine) ToChar() error {
	if err := m.has("to_char", 1); err != nil {
		return err
	}
	s, err := m.readText("to_char", -1)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return newError(TypeMismatch, "to_char", "expected a single character, got length %d", n)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r > 0xFFFF {
		return newError(TypeMismatch, "to_char", "character %q is outside the basic multilingual plane", r)
	}
	m.store(-1, Number(float64(r)))
	return nil
}

// FromChar replaces a number with the one-character text for its 16-bit code unit
func (m *Machine) FromChar() error {
	if err := m.has("from_char", 1); err != nil {
		return err
	}
	n, err := m.readNumber("from_char", -1)
	if err != nil {
		return err
	}
	m.store(-1, Text(string(rune(toUint16(n)))))
	return nil
}

func toUint16(f float64) uint16 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	r := math.Mod(math.Trunc(f), 1<<16)
	if r < 0 {
		r += 1 << 16
	}
	return uint16(r)
}

// Index takes [haystack needle] and leaves the rune offset of the first
// occurrence of needle, or -1.
func (m *Machine) Index() error {
	if err := m.has("index", 2); err != nil {
		return err
	}
	haystack, err := m.readText("index", -2)
	if err != nil {
		return err
	}
	needle, err := m.readText("index", -1)
	if err != nil {
		return err
	}

	pos := strings.Index(haystack, needle)
	if pos > 0 {
		pos = utf8.RuneCountInString(haystack[:pos])
	}

	m.store(-2, Number(float64(pos)))
	m.drop(1)
	return nil
}

// Readline pushes the next input line and true, or an empty text and false
// once the input is exhausted.
func (m *Machine) Readline() error {
	line, err := m.lineReader().ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("readline: %w", err)
	}

	if line == "" && err != nil {
		m.st.Push(Text(""))
		m.st.Push(Boolean(false))
		return nil
	}

	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	m.st.Push(Text(line))
	m.st.Push(Boolean(true))
	return nil
}

// Print consumes the top value and sends it to the output
func (m *Machine) Print() error {
	if err := m.has("print", 1); err != nil {
		return err
	}
	v := m.read(-1)
	m.drop(1)

	if err := m.out.Value(v); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// Assert takes [condition message]. A falsy condition reports the message
// and fails with AssertFailed, leaving the stack untouched.
func (m *Machine) Assert() error {
	if err := m.has("assert", 2); err != nil {
		return err
	}
	msg, err := m.readText("assert", -1)
	if err != nil {
		return err
	}
	if !m.read(-2).Truthy() {
		m.reporter.AssertFailed(msg)
		return newError(AssertFailed, "assert", "%s", msg)
	}
	m.drop(2)
	return nil
}

// CheckCondition pops the top value and returns its truthiness
func (m *Machine) CheckCondition() (bool, error) {
	if err := m.has("check_condition", 1); err != nil {
		return false, err
	}
	v := m.read(-1)
	m.drop(1)
	return v.Truthy(), nil
}

// PrintStack sends a snapshot of a non-empty stack to the output
func (m *Machine) PrintStack() error {
	if m.Len() == 0 {
		return nil
	}
	if err := m.out.Stack(m.Values()); err != nil {
		return fmt.Errorf("printStack: %w", err)
	}
	return nil
}
