package generator

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrDone is the panic value raised when a yield function that
	// escaped its sequence body is called after the body has finished
	// or its generator has been stopped.
	ErrDone = errors.New("generator: yield called after sequence finished")

	// ErrStopped is the panic value used to unwind a sequence body
	// when its generator is stopped mid-sequence. Bodies that need to
	// release resources should do so with defer; they must not
	// recover from this value and keep yielding.
	ErrStopped = errors.New("generator: generator stopped")

	// ErrBodyPanic wraps any other panic that escapes a sequence
	// body. It is reported through [Generator.Err] rather than
	// re-raised on the consumer.
	ErrBodyPanic = errors.New("generator: sequence body panicked")

	_ unsafe.Pointer
)

// coroutine represents a native Go coroutine instance. It's an opaque
// struct used by the runtime functions.
type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)

// start binds body to a fresh runtime coroutine without running any
// of it. The body receives a yield function that parks the produced
// value in the frame's single value slot and suspends until the next
// resume.
//
// The yield closure captures the frame's generation at bind time.
// A yield that escapes the body stays callable after the frame has
// been reset and recycled; the generation check turns such a stale
// call into an ErrDone panic before it can touch the frame or
// switch to the exited coroutine.
func (f *Frame) start(body func(yield func(any))) {
	gen := f.gen
	f.coro = newcoro(func(c *coroutine) {
		defer func() {
			if !f.done {
				if p := recover(); p != nil {
					if err, ok := p.(error); !ok || !errors.Is(err, ErrStopped) {
						f.failure = fmt.Errorf("%w: %w", ErrBodyPanic, newPanicError(p))
					}
				}
				f.done = true
			}
		}()

		yield := func(val any) {
			if f.gen != gen || f.done {
				panic(ErrDone)
			}
			f.value = val
			f.hasValue = true
			coroswitch(c)
			if f.stopping {
				panic(ErrStopped)
			}
		}

		if !f.stopping {
			body(yield)
		}
	})
}

// resume runs the body until its next yield point or completion.
// It reports whether a value was produced. Once the frame is done,
// resume is a no-op that keeps returning false.
func (f *Frame) resume() bool {
	if f.coro == nil || f.done {
		return false
	}
	f.value = nil
	f.hasValue = false
	coroswitch(f.coro)
	return !f.done
}

// stop unwinds the body from its current suspension point and marks
// the frame done. A frame that never ran skips the body entirely.
// If a deferred function in the body panics during unwinding, that
// panic propagates to the caller of stop.
func (f *Frame) stop() {
	if f.coro == nil || f.done {
		return
	}
	f.stopping = true
	coroswitch(f.coro)
	if f.failure != nil {
		panic(f.failure)
	}
	f.value = nil
	f.hasValue = false
}
