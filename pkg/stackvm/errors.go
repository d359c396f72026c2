package stackvm

import (
	"errors"
	"fmt"
)

// Code is the stable numeric error code reported to the dispatcher.
type Code int

const (
	StackUnderflow Code = 101
	StackOverflow  Code = 102 // reserved
	StringMax      Code = 103 // reserved
	TypeMismatch   Code = 104
	AssertFailed   Code = 105

	NotImplemented Code = 201
	DataCorrupted  Code = 202 // reserved
	StringTooLong  Code = 203 // reserved
)

var codeNames = map[Code]string{
	StackUnderflow: "stack-underflow",
	StackOverflow:  "stack-overflow",
	StringMax:      "string-max",
	TypeMismatch:   "type-mismatch",
	AssertFailed:   "assert-failed",
	NotImplemented: "not-implemented",
	DataCorrupted:  "data-corrupted",
	StringTooLong:  "string-too-long",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code-%d", int(c))
}

// Error is the failure returned by every machine operation.
type Error struct {
	Code Code   // wire code
	Op   string // operation that failed, empty for sentinels
	Msg  string // optional detail
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s (%d)", e.Code, int(e.Code))
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrStackUnderflow = &Error{Code: StackUnderflow}
	ErrStackOverflow  = &Error{Code: StackOverflow}
	ErrStringMax      = &Error{Code: StringMax}
	ErrTypeMismatch   = &Error{Code: TypeMismatch}
	ErrAssertFailed   = &Error{Code: AssertFailed}
	ErrNotImplemented = &Error{Code: NotImplemented}
	ErrDataCorrupted  = &Error{Code: DataCorrupted}
	ErrStringTooLong  = &Error{Code: StringTooLong}
)

// CodeOf extracts the wire code from err, looking through wrapping.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

func newError(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Msg: fmt.Sprintf(format, args...)}
}
