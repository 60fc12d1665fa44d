package interpreter

import "fmt"

// ErrorKind classifies the three fatal Brewin error conditions.
type ErrorKind int

const (
	NameError ErrorKind = iota
	TypeError
	FaultError
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case FaultError:
		return "FaultError"
	default:
		return fmt.Sprintf("unknown_error_kind_%d", int(k))
	}
}

// RuntimeError is the single fatal error channel. There is no catch or
// recovery path inside the language; the top-level driver matches it once
// and terminates.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func nameErrorf(format string, args ...interface{}) error {
	return &RuntimeError{Kind: NameError, Message: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...interface{}) error {
	return &RuntimeError{Kind: TypeError, Message: fmt.Sprintf(format, args...)}
}

func faultErrorf(format string, args ...interface{}) error {
	return &RuntimeError{Kind: FaultError, Message: fmt.Sprintf(format, args...)}
}
