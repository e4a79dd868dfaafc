package levenshtein

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqmetric/sequence"
)

// fillWavefront fills the interior of d by anti-diagonals k = i+j.
// Every cell on diagonal k depends only on diagonals k-1 and k-2, so the
// cells of one diagonal are split into contiguous chunks and filled
// concurrently; the next diagonal starts only after the whole group returns.
func fillWavefront[T any](d *arena, a, b sequence.Sequence[T], eq sequence.EqualFunc[T], workers, minDiag int) error {
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	for k := 2; k <= d.n+d.m; k++ {
		lo, hi := max(1, k-d.m), min(d.n, k-1)
		size := hi - lo + 1
		if workers == 1 || size < minDiag || size < 2 {
			for i := lo; i <= hi; i++ {
				d.relax(i, k-i, eq(a.At(i-1), b.At(k-i-1)))
			}
			continue
		}

		chunk := (size + workers - 1) / workers
		var g errgroup.Group
		for s := lo; s <= hi; s += chunk {
			s := s
			e := min(hi, s+chunk-1)
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: %v", ErrComparatorPanic, r)
					}
				}()
				for i := s; i <= e; i++ {
					d.relax(i, k-i, eq(a.At(i-1), b.At(k-i-1)))
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}
