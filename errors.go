package pmcalc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors a calculator session may run into.
type ErrorKind int8

// Kinds of errors. All but InternalError are caused by user input and are
// recoverable at statement level.
const (
	NoError ErrorKind = iota
	LexError
	SyntaxError
	NameError
	MathError
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "<no error>"
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case NameError:
		return "name error"
	case MathError:
		return "math error"
	case InternalError:
		return "internal error"
	}
	return fmt.Sprintf("<illegal error kind: %d>", k)
}

// Error is an error of a known kind. Its message is what gets reported to the
// user, without any decoration.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Recoverable is a predicate: may a session continue after this error?
func (e *Error) Recoverable() bool {
	return e.Kind > NoError && e.Kind < InternalError
}

// Errorf creates an error of kind k with a formatted message.
func Errorf(k ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, if err is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return NoError, false
}

// IsRecoverable is a predicate: is err (or does it wrap) a recoverable *Error?
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Recoverable()
	}
	return false
}
