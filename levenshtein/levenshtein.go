package levenshtein

import (
	"github.com/katalvlaran/seqmetric/sequence"
)

// Levenshtein — edit distance
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). If either is 0 the answer is the other length.
//  2. Initialize:
//     D[i][0] = i for i=0..n
//     D[0][j] = j for j=0..m
//  3. For i = 1..n, j = 1..m:
//     D[i][j] = D[i-1][j-1]                                  if eq(a[i-1], b[j-1])
//     D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])   otherwise
//  4. distance = D[n][m].
//
// The comparator is always called as eq(elementOfA, elementOfB), whatever
// the storage layout, so asymmetric comparators see a stable argument order.

// Distance returns the edit distance between a and b using ==.
// A nil slice is the empty sequence.
func Distance[T comparable](a, b []T) int {
	return DistanceOf[T](sequence.Slice[T](a), sequence.Slice[T](b), sequence.Equal[T]())
}

// DistanceFunc returns the edit distance between a and b under eq.
// A nil eq falls back to sequence.DeepEqual.
func DistanceFunc[T any](a, b []T, eq sequence.EqualFunc[T]) int {
	return DistanceOf[T](sequence.Slice[T](a), sequence.Slice[T](b), eq)
}

// Strings returns the edit distance between the code points of a and b.
func Strings(a, b string) int {
	return Distance([]rune(a), []rune(b))
}

// DistanceOf returns the edit distance between a and b under eq.
// Absent (nil) sequences are treated as empty; a nil eq falls back to
// sequence.DeepEqual. Memory is O(min(len(a), len(b))).
func DistanceOf[T any](a, b sequence.Sequence[T], eq sequence.EqualFunc[T]) int {
	n, m := sequence.Len(a), sequence.Len(b)
	if n == 0 || m == 0 {
		return n + m
	}

	return twoRows(a, b, sequence.OrDefault(eq))
}

// Compute runs the edit-distance computation configured by opts.
// A nil opts means DefaultOptions(). Absent sequences are treated as empty
// and a nil eq falls back to sequence.DeepEqual.
//
// Errors:
//   - ErrBadOptions         — unknown mode or negative tuning values.
//   - ErrScriptNeedsMatrix  — ReturnScript with TwoRows.
//   - ErrComparatorPanic    — eq panicked inside a Wavefront worker.
func Compute[T any](a, b sequence.Sequence[T], eq sequence.EqualFunc[T], opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	eq = sequence.OrDefault(eq)

	n, m := sequence.Len(a), sequence.Len(b)
	if n == 0 || m == 0 {
		res := Result{Distance: n + m}
		if o.ReturnScript {
			res.Script = borderScript(n, m)
		}

		return res, nil
	}

	if o.MemoryMode == TwoRows {
		return Result{Distance: twoRows(a, b, eq)}, nil
	}

	d := newArena(n, m)
	if o.MemoryMode == Wavefront {
		if err := fillWavefront(d, a, b, eq, o.Workers, o.MinParallelDiagonal); err != nil {
			return Result{}, err
		}
	} else {
		fillRows(d, a, b, eq)
	}

	res := Result{Distance: d.at(n, m)}
	if o.ReturnScript {
		res.Script = backtrace(d, a, b, eq)
	}

	return res, nil
}

// twoRows computes the distance with two rolling rows sized by the shorter
// input, after trimming the common prefix and suffix. Both inputs are non-empty.
func twoRows[T any](a, b sequence.Sequence[T], eq sequence.EqualFunc[T]) int {
	n, m := a.Len(), b.Len()

	start := 0
	for start < n && start < m && eq(a.At(start), b.At(start)) {
		start++
	}
	for n > start && m > start && eq(a.At(n-1), b.At(m-1)) {
		n--
		m--
	}
	la, lb := n-start, m-start
	if la == 0 || lb == 0 {
		return la + lb
	}

	if lb <= la {
		return rolling(la, lb, func(i, j int) bool {
			return eq(a.At(start+i), b.At(start+j))
		})
	}

	return rolling(lb, la, func(i, j int) bool {
		return eq(a.At(start+j), b.At(start+i))
	})
}

// rolling fills a rows x cols matrix keeping only two rows of cols+1 cells.
// same(i, j) reports whether row element i equals column element j.
func rolling(rows, cols int, same func(i, j int) bool) int {
	prev := make([]int, cols+1)
	curr := make([]int, cols+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= rows; i++ {
		curr[0] = i
		for j := 1; j <= cols; j++ {
			if same(i-1, j-1) {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[cols]
}
