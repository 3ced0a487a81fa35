package generator

import "iter"

// All returns an iterator over the generator's remaining values,
// adapting the pull protocol to range-over-func syntax. The iterator
// primes the next value on each step, so it observes exactly the
// values that manual [Generator.Next] and [Generator.Value] calls
// would.
//
// Ranging over a finished, stopped, or moved-from generator produces
// an empty sequence. Breaking out of the loop leaves the generator
// suspended at its current value; iteration or manual pulls may
// continue from there. A finished generator cannot be rewound;
// restarting a sequence means constructing a fresh generator.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Next() {
			val, ok := g.Value()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Collect pulls at most n values from g into a slice. It stops early
// if the sequence finishes first. Handy for consuming a bounded
// prefix of an infinite sequence.
func Collect[T any](g *Generator[T], n int) []T {
	var out []T
	for range n {
		if !g.Next() {
			break
		}
		val, _ := g.Value()
		out = append(out, val)
	}
	return out
}
