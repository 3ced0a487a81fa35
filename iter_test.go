package generator

import (
	"slices"
	"testing"
)

func TestAllMatchesManualPull(t *testing.T) {
	body := func(yield func(int)) {
		for i := 1; i <= 8; i++ {
			yield(i * i)
		}
	}

	manual, err := New(body)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer manual.Stop()

	ranged, err := New(body)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer ranged.Stop()

	var pulled []int
	for manual.Next() {
		v, _ := manual.Value()
		pulled = append(pulled, v)
	}

	var iterated []int
	for v := range ranged.All() {
		iterated = append(iterated, v)
	}

	if !slices.Equal(pulled, iterated) {
		t.Errorf("Expected iteration %v to match manual pulls %v", iterated, pulled)
	}
}

func TestAllOnFinishedGenerator(t *testing.T) {
	g, err := New(func(yield func(int)) {
		yield(1)
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Stop()

	for g.Next() {
	}
	for range g.All() {
		t.Fatal("Expected an empty iteration over a finished generator")
	}
}

func TestAllOnMovedFromGenerator(t *testing.T) {
	g, err := New(func(yield func(int)) {
		yield(1)
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	moved := g.Move()
	defer moved.Stop()

	for range g.All() {
		t.Fatal("Expected an empty iteration over a moved-from generator")
	}
}

func TestAllBreakKeepsGeneratorLive(t *testing.T) {
	g, err := New(func(yield func(int)) {
		for i := 0; ; i++ {
			yield(i)
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Stop()

	var seen []int
	for v := range g.All() {
		seen = append(seen, v)
		if len(seen) == 3 {
			break
		}
	}
	if !slices.Equal(seen, []int{0, 1, 2}) {
		t.Fatalf("Expected [0 1 2], got %v", seen)
	}

	// Breaking out of the loop must leave the sequence resumable.
	if !g.Next() {
		t.Fatal("Expected the generator to stay live after break")
	}
	if v, _ := g.Value(); v != 3 {
		t.Errorf("Expected the pull after break to produce 3, got %d", v)
	}
}

func TestCollect(t *testing.T) {
	g, err := New(func(yield func(int)) {
		yield(4)
		yield(5)
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Stop()

	if got := Collect(g, 10); !slices.Equal(got, []int{4, 5}) {
		t.Errorf("Expected Collect to stop at the end of the sequence, got %v", got)
	}
}
