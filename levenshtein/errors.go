package levenshtein

import "errors"

// The distance itself is total over any pair of sequences; these errors are
// only ever produced by Compute for unusable Options or a failing comparator.
var (
	// ErrBadOptions indicates an unknown MemoryMode or a negative tuning value.
	ErrBadOptions = errors.New("levenshtein: invalid options")

	// ErrScriptNeedsMatrix indicates that ReturnScript was requested in TwoRows mode.
	ErrScriptNeedsMatrix = errors.New("levenshtein: ReturnScript requires FullMatrix or Wavefront")

	// ErrComparatorPanic indicates that the EqualFunc panicked inside a Wavefront worker.
	ErrComparatorPanic = errors.New("levenshtein: comparator panicked")
)
