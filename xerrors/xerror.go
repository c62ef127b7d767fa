// Package xerrors defines the two discriminable failure kinds the
// fixedpoint library surfaces: Overflow and Domain. The library never
// retries, logs, or recovers from either — it returns one and lets the
// caller decide.
package xerrors

import "fmt"

const (
	// CodeOverflow marks a result whose integer part does not fit the
	// declared I bits: out-of-range construction, wrapping +/-, or an
	// overflowing shape conversion.
	CodeOverflow uint32 = iota + 1
	// CodeDomain marks an operation undefined for its input: sqrt of a
	// negative value, reciprocal of zero, or a decimal parse failure.
	CodeDomain
)

var (
	ErrOverflow = New(CodeOverflow, "overflow")
	ErrDomain   = New(CodeDomain, "domain error")
)

// XError is a failure the caller can discriminate by Code without
// string-matching Error().
type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Is(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{code: code, msg: msg}
}

// Wrap attaches cause to a new error carrying code/msg.
func Wrap(code uint32, msg string, cause error) XError {
	return &xerror{code: code, msg: msg, cause: cause}
}

func (e *xerror) Code() uint32 { return e.code }
func (e *xerror) Cause() error { return e.cause }
func (e *xerror) Msg() string  { return e.msg }

func (e *xerror) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *xerror) Wrap(cause error) XError {
	return &xerror{code: e.code, msg: e.msg, cause: cause}
}

func (e *xerror) Wrapf(format string, args ...any) XError {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is reports whether other has the same code, the only thing the
// library guarantees is stable across messages.
func (e *xerror) Is(other XError) bool {
	return other != nil && e.code == other.Code()
}
