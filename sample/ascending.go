package sample

import "github.com/webriots/generator"

// Ascending returns an unbounded generator producing start,
// start+1, start+2, … The consumer decides when to stop pulling.
func Ascending(start int) (*generator.Generator[int], error) {
	return generator.New(func(yield func(int)) {
		for i := start; ; i++ {
			yield(i)
		}
	})
}

// Range returns a generator producing 0 through n-1. A non-positive
// n produces an empty sequence.
func Range(n int) (*generator.Generator[int], error) {
	return generator.New(func(yield func(int)) {
		for i := 0; i < n; i++ {
			yield(i)
		}
	})
}
