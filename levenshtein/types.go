package levenshtein

import "fmt"

// MemoryMode controls how the DP matrix is stored.
//
//   - TwoRows    — only keep the previous and current row over the shorter
//     input. Memory: O(min(n, m)). Cannot recover the edit script.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in one flat buffer.
//     Allows ReturnScript. Memory: O(n·m).
//
//   - Wavefront  — like FullMatrix, but cells on the same anti-diagonal
//     (i+j = const) are filled concurrently by up to Options.Workers goroutines.
type MemoryMode int

const (
	// TwoRows mode: two rolling rows, distance only.
	TwoRows MemoryMode = iota

	// FullMatrix mode: full flat matrix, supports ReturnScript.
	FullMatrix

	// Wavefront mode: full flat matrix filled by anti-diagonals in parallel.
	Wavefront
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case TwoRows:
		return "TwoRows"
	case FullMatrix:
		return "FullMatrix"
	case Wavefront:
		return "Wavefront"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Default tuning for Wavefront mode.
const (
	// DefaultMinParallelDiagonal is the shortest anti-diagonal split across workers.
	// Shorter diagonals are filled on the calling goroutine.
	DefaultMinParallelDiagonal = 512
)

// Options configures Compute.
//
// Fields:
//   - MemoryMode          — TwoRows, FullMatrix or Wavefront.
//   - Workers             — goroutine limit for Wavefront; 0 means GOMAXPROCS.
//   - MinParallelDiagonal — diagonals shorter than this are filled serially.
//     0 means every diagonal is split.
//   - ReturnScript        — backtrack and return the edit script.
//     Requires FullMatrix or Wavefront.
type Options struct {
	MemoryMode          MemoryMode
	Workers             int
	MinParallelDiagonal int
	ReturnScript        bool
}

// DefaultOptions returns TwoRows mode without script recovery.
func DefaultOptions() Options {
	return Options{
		MemoryMode:          TwoRows,
		Workers:             0,
		MinParallelDiagonal: DefaultMinParallelDiagonal,
		ReturnScript:        false,
	}
}

func (o Options) validate() error {
	switch o.MemoryMode {
	case TwoRows, FullMatrix, Wavefront:
	default:
		return fmt.Errorf("%w: unknown memory mode %v", ErrBadOptions, o.MemoryMode)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrBadOptions, o.Workers)
	}
	if o.MinParallelDiagonal < 0 {
		return fmt.Errorf("%w: MinParallelDiagonal must be >= 0, got %d", ErrBadOptions, o.MinParallelDiagonal)
	}
	if o.ReturnScript && o.MemoryMode == TwoRows {
		return ErrScriptNeedsMatrix
	}

	return nil
}

// OpKind is the type of a single edit step.
type OpKind int

const (
	// Match keeps a[I], which equals b[J].
	Match OpKind = iota
	// Substitute replaces a[I] with b[J].
	Substitute
	// Insert inserts b[J] before a[I] (I may be len(a)).
	Insert
	// Delete removes a[I]; J is the position in b it would have occupied.
	Delete
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case Match:
		return "Match"
	case Substitute:
		return "Substitute"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of an edit script.
type Op struct {
	Kind OpKind
	I, J int
}

// Result is the outcome of Compute.
// Script is nil unless Options.ReturnScript was set; when present it lists
// the steps in left-to-right order and contains exactly Distance non-Match ops.
type Result struct {
	Distance int
	Script   []Op
}
