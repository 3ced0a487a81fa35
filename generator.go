package generator

import "fmt"

// A Generator is the owning handle of one resumable sequence. It is
// single-consumer and pull-driven: each call to Next runs the body
// on the caller's goroutine until the body yields its next value or
// finishes.
//
// A handle owns at most one frame. Ownership is unique: handles must
// not be copied by assignment, only transferred with [Generator.Move].
// A handle with no frame (zero value, moved-from, or stopped) is
// inert; Next returns false and Value reports no value.
type Generator[T any] struct {
	frame *Frame
	err   error
}

// New creates a generator for the given sequence body. The frame is
// taken from the currently installed [Allocator]; none of the body
// runs until the first call to [Generator.Next].
//
// The body produces values by calling yield, which suspends the body
// until the consumer asks for the next value, and finishes the
// sequence by returning. Bodies may yield any number of times,
// including never, and may be infinite.
//
// New fails only when the installed allocator cannot provide a
// frame; the error wraps [ErrFrameAlloc] for the built-in
// allocators.
func New[T any](body func(yield func(T))) (*Generator[T], error) {
	if body == nil {
		panic("generator: nil body")
	}
	alloc := installed
	f, err := alloc.Alloc()
	if err != nil {
		return nil, fmt.Errorf("generator: create: %w", err)
	}
	f.owner = alloc
	f.start(func(yield func(any)) {
		body(func(val T) { yield(val) })
	})
	return &Generator[T]{frame: f}, nil
}

// Next resumes the sequence body until it yields the next value or
// finishes, and reports whether a value is now available through
// [Generator.Value]. Next returns false, with no effect, on a
// generator that is finished, stopped, or moved-from, no matter how
// many times it is called.
//
// Next returning true guarantees Value reports a value; Next
// returning false guarantees it does not.
func (g *Generator[T]) Next() bool {
	if g == nil || g.frame == nil {
		return false
	}
	if g.frame.resume() {
		return true
	}
	if g.err == nil {
		g.err = g.frame.failure
	}
	return false
}

// Value returns the value produced by the last call to [Generator.Next]
// that returned true. The second result is false when there is no
// value to report: before the first Next, after the sequence
// finishes, and on a stopped or moved-from generator.
func (g *Generator[T]) Value() (T, bool) {
	if g == nil || g.frame == nil || !g.frame.hasValue {
		var zero T
		return zero, false
	}
	// Comma-ok: a body may legitimately yield a nil interface value,
	// which a plain assertion from the untyped slot would reject.
	val, _ := g.frame.value.(T)
	return val, true
}

// Err returns the failure captured from the sequence body, if any.
// A body that panics finishes its generator (Next returns false) and
// the recovered panic is reported here, wrapping [ErrBodyPanic].
// Err returns nil while the sequence is still producing values and
// after a sequence that finished normally.
func (g *Generator[T]) Err() error {
	if g == nil {
		return nil
	}
	return g.err
}

// Move transfers frame ownership to a fresh handle and empties g.
// The returned generator continues the sequence exactly where g left
// off; calling Next or Stop on g afterwards is a safe no-op.
func (g *Generator[T]) Move() *Generator[T] {
	moved := &Generator[T]{}
	if g != nil {
		moved.frame, g.frame = g.frame, nil
		moved.err, g.err = g.err, nil
	}
	return moved
}

// Stop releases the generator's frame back to its allocator. It is
// safe at any point in the lifecycle: before the first Next, while
// the sequence is mid-stream, or after it has finished, and calling
// it again is a no-op. Stopping a mid-stream generator unwinds the
// body from its suspension point, running the body's deferred calls;
// the body is never resumed past that point.
func (g *Generator[T]) Stop() {
	if g == nil || g.frame == nil {
		return
	}
	f := g.frame
	g.frame = nil
	f.stop()
	owner := f.owner
	f.reset()
	owner.Free(f)
}
