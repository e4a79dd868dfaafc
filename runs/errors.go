package runs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for every argument error in this package.
	ErrInvalidArgument = errors.New("runs: invalid argument")

	// ErrBadMinRunLength indicates minRunLength < 1.
	ErrBadMinRunLength = fmt.Errorf("%w: minimum run length must be at least 1", ErrInvalidArgument)

	// ErrNilSequence indicates an absent (nil interface) sequence.
	ErrNilSequence = fmt.Errorf("%w: sequence is absent", ErrInvalidArgument)
)
