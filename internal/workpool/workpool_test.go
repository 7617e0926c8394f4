package workpool

import (
	"sync/atomic"
	"testing"
)

func TestByIndexCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 10000
	var counts [n]int32
	ByIndex(n, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d ran %d times, want 1", i, c)
		}
	}
}

func TestByIndexSmallNRunsInline(t *testing.T) {
	sum := 0
	ByIndex(3, func(i int) { sum += i })
	if sum != 0+1+2 {
		t.Fatalf("got %d, want 3", sum)
	}
}

func TestFromArrayPairsItemsWithIndex(t *testing.T) {
	items := []string{"a", "b", "c"}
	seen := make([]string, len(items))
	FromArray(items, func(item string, index int) {
		seen[index] = item
	})
	for i, v := range items {
		if seen[i] != v {
			t.Fatalf("at %d: got %q want %q", i, seen[i], v)
		}
	}
}
