// Package runs detects maximal runs of consecutive equal elements in a
// sequence and reports those whose length reaches a threshold.
//
// A run is a maximal contiguous span in which every adjacent pair compares
// equal under the supplied EqualFunc. Runs are found in a single left-to-right
// pass; the trailing run is closed after the loop, so a qualifying run at the
// very end of the input is never lost.
//
// Thresholds count elements, not comparisons: with minRunLength = 2 the
// smallest reported run is two equal elements.
//
// Absent vs empty:
//
//	Scan and FindRepeatedRunsOf reject a nil sequence.Sequence with
//	ErrNilSequence. An empty sequence yields an empty result. The slice
//	helpers have no absent state: a nil slice is simply empty.
package runs

import (
	"fmt"

	"github.com/katalvlaran/seqmetric/sequence"
)

// Run is a maximal span of equal elements.
type Run struct {
	Start  int // index of the first element
	Length int // number of elements, ≥ 1
}

// End returns the exclusive end index of r.
func (r Run) End() int { return r.Start + r.Length }

// Scan returns every maximal run of s with Length ≥ minRunLength, ordered by Start.
// A nil eq falls back to sequence.DeepEqual.
//
// The comparator is called as eq(prev, next) on each adjacent pair, so a
// non-transitive eq (e.g. "differs by at most 1") can chain a run
// through elements that are not equal to its first element.
//
// Errors:
//   - ErrBadMinRunLength — minRunLength < 1.
//   - ErrNilSequence     — s is absent.
func Scan[T any](s sequence.Sequence[T], minRunLength int, eq sequence.EqualFunc[T]) ([]Run, error) {
	if minRunLength < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBadMinRunLength, minRunLength)
	}
	if sequence.IsAbsent(s) {
		return nil, ErrNilSequence
	}
	eq = sequence.OrDefault(eq)

	var (
		found   []Run
		started bool // a previous element has been observed
		prev    T
		cur     Run
	)
	n := s.Len()
	for i := 0; i < n; i++ {
		x := s.At(i)
		if started && eq(prev, x) {
			prev = x
			cur.Length++
			continue
		}
		if started && cur.Length >= minRunLength {
			found = append(found, cur)
		}
		started, prev, cur = true, x, Run{Start: i, Length: 1}
	}
	if started && cur.Length >= minRunLength {
		found = append(found, cur)
	}

	return found, nil
}

// FindRepeatedRunsOf returns the start indices of the runs reported by Scan.
func FindRepeatedRunsOf[T any](s sequence.Sequence[T], minRunLength int, eq sequence.EqualFunc[T]) ([]int, error) {
	found, err := Scan(s, minRunLength, eq)
	if err != nil {
		return nil, err
	}
	starts := make([]int, len(found))
	for i, r := range found {
		starts[i] = r.Start
	}

	return starts, nil
}

// FindRepeatedRuns returns the start indices of runs of == elements with
// at least minRunLength elements. A nil s is empty.
func FindRepeatedRuns[T comparable](s []T, minRunLength int) ([]int, error) {
	return FindRepeatedRunsOf[T](sequence.Slice[T](s), minRunLength, sequence.Equal[T]())
}

// FindRepeatedRunsFunc is FindRepeatedRuns with an injected comparator.
// A nil eq falls back to sequence.DeepEqual; a nil s is empty.
func FindRepeatedRunsFunc[T any](s []T, minRunLength int, eq sequence.EqualFunc[T]) ([]int, error) {
	return FindRepeatedRunsOf[T](sequence.Slice[T](s), minRunLength, eq)
}
