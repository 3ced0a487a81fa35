// Package sample holds demonstration sequence bodies for the
// generator package: a capped Fibonacci sequence, an unbounded
// ascending counter, and a bounded integer range.
package sample

import "github.com/webriots/generator"

// Fibonacci returns a generator producing 0, 1, 1, 2, 3, 5, 8, …
// The sequence finishes after the first value that exceeds ceiling,
// which is included. For ceiling 10 it produces exactly
// 0 1 1 2 3 5 8 13.
func Fibonacci(ceiling float64) (*generator.Generator[float64], error) {
	return generator.New(func(yield func(float64)) {
		j, i := 0.0, 1.0
		yield(j)
		if j > ceiling {
			return
		}
		for {
			yield(i)
			if i > ceiling {
				return
			}
			i, j = i+j, i
		}
	})
}
