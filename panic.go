package generator

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// panicError carries a panic value recovered from a sequence body,
// together with the stack captured at the recovery point. It travels
// to the consumer inside the error chain returned by
// [Generator.Err], wrapped by [ErrBodyPanic].
type panicError struct {
	value any
	stack []byte
}

func newPanicError(v any) error {
	return &panicError{
		value: v,
		stack: debug.Stack(),
	}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("%v", p.value)
}

// Unwrap exposes the panic value when it was itself an error, so
// errors.Is and errors.As see through to the body's failure.
func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

// PanicValue returns the raw value a sequence body panicked with, as
// recovered from err's chain, or nil if err does not carry one.
func PanicValue(err error) any {
	var p *panicError
	if !errors.As(err, &p) {
		return nil
	}
	return p.value
}

// PanicStack returns the stack trace captured when a sequence body
// panicked, as recovered from err's chain, or nil if err does not
// carry one. The trace points at the yield-side of the body, which
// is usually more useful for debugging than the consumer's stack.
func PanicStack(err error) []byte {
	var p *panicError
	if !errors.As(err, &p) {
		return nil
	}
	return p.stack
}
