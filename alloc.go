package generator

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFrameAlloc is returned (wrapped) by [New] when a frame cannot
// be allocated, such as when a [FixedAllocator] runs out of slots.
// It is distinct from a sequence legitimately running out of values,
// which [Generator.Next] signals by returning false.
var ErrFrameAlloc = errors.New("generator: frame allocation failed")

// A Frame holds the saved state of one suspended sequence body: its
// runtime coroutine, the single slot for the latest produced value,
// and the allocator the frame must be returned to. A frame is owned
// by exactly one [Generator] and is never shared.
type Frame struct {
	coro     *coroutine
	value    any
	hasValue bool
	done     bool
	stopping bool
	failure  error
	owner    Allocator
	gen      uint64
}

// reset clears a frame for reuse and advances its generation so that
// yield functions bound to the frame's previous life can never touch
// it again. The generator resets frames before handing them back to
// their allocator, so Alloc implementations may return previously
// freed frames as-is.
func (f *Frame) reset() {
	gen := f.gen
	*f = Frame{gen: gen + 1}
}

// An Allocator supplies the memory backing generator frames.
//
// Alloc returns a frame for a new generator, or an error when no
// frame can be provided. Freed frames are handed back through Free
// already cleared; an allocator may retain them for reuse or drop
// them. The zero Frame value is a valid fresh frame.
//
// The installed allocator is consulted once per [New] call. A frame
// is always freed through the allocator that produced it, so the
// allocator must stay valid until every frame allocated from it has
// been released.
type Allocator interface {
	Alloc() (*Frame, error)
	Free(*Frame)
}

// poolAllocator is the default allocator. It recycles frames through
// a shared pool, so generators created and stopped in steady state
// produce no garbage.
type poolAllocator struct {
	pool sync.Pool
}

func (a *poolAllocator) Alloc() (*Frame, error) {
	if f := a.pool.Get(); f != nil {
		return f.(*Frame), nil
	}
	return new(Frame), nil
}

func (a *poolAllocator) Free(f *Frame) {
	a.pool.Put(f)
}

// A FixedAllocator serves frames from a fixed-size slot array
// allocated up front. Once every slot is in use, Alloc fails with an
// error wrapping [ErrFrameAlloc] until a frame is freed. Useful for
// bounding allocation when many short-lived generators are created
// in a tight loop.
type FixedAllocator struct {
	slots []Frame
	free  []*Frame
}

// NewFixedAllocator returns an allocator with capacity frame slots.
// The backing array lives as long as the allocator; the caller must
// keep the allocator reachable until every generator created from it
// has been stopped.
func NewFixedAllocator(capacity int) *FixedAllocator {
	a := &FixedAllocator{
		slots: make([]Frame, capacity),
		free:  make([]*Frame, 0, capacity),
	}
	for i := range a.slots {
		a.free = append(a.free, &a.slots[i])
	}
	return a
}

func (a *FixedAllocator) Alloc() (*Frame, error) {
	if len(a.free) == 0 {
		return nil, fmt.Errorf("%w: all %d fixed slots in use", ErrFrameAlloc, len(a.slots))
	}
	f := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	return f, nil
}

func (a *FixedAllocator) Free(f *Frame) {
	a.free = append(a.free, f)
}

// Avail reports how many frame slots are currently unused.
func (a *FixedAllocator) Avail() int {
	return len(a.free)
}

var defaultAllocator = &poolAllocator{}

// installed is the ambient allocator slot consulted by New. It is
// deliberately unsynchronized: callers must not create generators
// concurrently with installing or resetting the allocator.
var installed Allocator = defaultAllocator

// Install sets the allocator used by subsequent [New] calls.
// Frames already allocated are unaffected; each frame is freed
// through the allocator it came from. Installing nil resets to the
// default pooled allocator.
func Install(a Allocator) {
	if a == nil {
		a = defaultAllocator
	}
	installed = a
}

// ResetDefault restores the default pooled allocator.
func ResetDefault() {
	installed = defaultAllocator
}
