package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ascending(start int) func(yield func(int)) {
	return func(yield func(int)) {
		for i := start; ; i++ {
			yield(i)
		}
	}
}

func TestFixedAllocatorExhaustion(t *testing.T) {
	r := require.New(t)

	Install(NewFixedAllocator(1))
	defer ResetDefault()

	a, err := New(ascending(0))
	r.NoError(err)

	_, err = New(ascending(0))
	r.Error(err)
	r.ErrorIs(err, ErrFrameAlloc)

	// The failed creation must not disturb the live generator.
	r.True(a.Next())
	v, ok := a.Value()
	r.True(ok)
	r.Equal(0, v)

	// Freeing the slot makes creation possible again.
	a.Stop()
	b, err := New(ascending(7))
	r.NoError(err)
	defer b.Stop()
	r.True(b.Next())
	v, ok = b.Value()
	r.True(ok)
	r.Equal(7, v)
}

func TestFixedAllocatorZeroCapacity(t *testing.T) {
	r := require.New(t)

	Install(NewFixedAllocator(0))
	defer ResetDefault()

	_, err := New(ascending(0))
	r.ErrorIs(err, ErrFrameAlloc)
}

func TestFixedAllocatorEquivalence(t *testing.T) {
	r := require.New(t)

	pooled, err := New(ascending(100))
	r.NoError(err)
	defer pooled.Stop()

	Install(NewFixedAllocator(1))
	defer ResetDefault()

	fixed, err := New(ascending(100))
	r.NoError(err)
	defer fixed.Stop()

	r.Equal(Collect(pooled, 10), Collect(fixed, 10))
}

func TestInstallDoesNotAffectLiveFrames(t *testing.T) {
	r := require.New(t)

	g, err := New(ascending(0))
	r.NoError(err)
	r.True(g.Next())

	// The live frame stays bound to the allocator it came from.
	fixed := NewFixedAllocator(0)
	Install(fixed)
	defer ResetDefault()

	r.True(g.Next())
	v, ok := g.Value()
	r.True(ok)
	r.Equal(1, v)

	g.Stop()
	r.Equal(0, fixed.Avail(), "stopping a pooled generator must not feed the fixed allocator")
}

func TestFixedAllocatorRecycles(t *testing.T) {
	r := require.New(t)

	alloc := NewFixedAllocator(2)
	Install(alloc)
	defer ResetDefault()

	for round := 0; round < 5; round++ {
		a, err := New(ascending(round))
		r.NoError(err)
		b, err := New(ascending(round * 10))
		r.NoError(err)
		r.Equal(0, alloc.Avail())

		r.Equal([]int{round, round + 1}, Collect(a, 2))
		r.Equal([]int{round * 10, round*10 + 1}, Collect(b, 2))

		a.Stop()
		b.Stop()
		r.Equal(2, alloc.Avail())
	}
}

func TestInstallNilRestoresDefault(t *testing.T) {
	r := require.New(t)

	Install(NewFixedAllocator(0))
	Install(nil)

	g, err := New(ascending(0))
	r.NoError(err)
	g.Stop()
}
