package stackvm

import (
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindNumber
	KindText
	KindBoolean
)

// String returns the lowercase name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

// Value is a dynamically-typed stack value: a number, a text or a boolean.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
}

// Number creates a new number Value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Text creates a new text Value.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Boolean creates a new boolean Value.
func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// Valid reports whether v is one of the three stack variants.
func (v Value) Valid() bool {
	switch v.Kind {
	case KindNumber, KindText, KindBoolean:
		return true
	default:
		return false
	}
}

// Truthy reports the truthiness of v: zero, NaN, the empty text and false are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNumber:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case KindText:
		return v.Str != ""
	case KindBoolean:
		return v.Bool
	default:
		return false
	}
}

// Equal compares two values of the same kind by value.
// The second result is false when the kinds differ.
func (v Value) Equal(o Value) (bool, bool) {
	if v.Kind != o.Kind || !v.Valid() {
		return false, false
	}

	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num, true
	case KindText:
		return v.Str == o.Str, true
	default:
		return v.Bool == o.Bool, true
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Num)
	case KindText:
		return v.Str
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return "<invalid>"
	}
}

// Quoted renders the value the way a stack snapshot shows it: text is quoted.
func (v Value) Quoted() string {
	if v.Kind == KindText {
		return strconv.Quote(v.Str)
	}
	return v.String()
}

// FormatNumber renders f as the shortest decimal that round-trips, without a
// fraction for integral values and in exponent form for very large or small
// magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatStack renders a snapshot of values, bottom first.
func FormatStack(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Quoted()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
