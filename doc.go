// Package seqmetric is a small toolkit for analyzing ordered sequences of
// arbitrary elements: how far apart two sequences are, and where a
// sequence repeats itself.
//
// 🚀 What is in the box?
//
//	Two independent, stateless families of pure functions:
//		• Edit distance: Levenshtein with two-row, full-matrix and
//		  wavefront-parallel fills, plus edit-script recovery
//		• Run detection: maximal runs of equal neighbours whose length
//		  reaches a threshold
//
// ✨ Why choose seqmetric?
//
//   - Generic – works on runes, bytes, words, structs, anything indexable
//   - Injected equality – == by default, any EqualFunc when you need it
//   - Explicit edges – absent vs empty inputs are documented, not guessed
//   - Safe to call concurrently on independent inputs
//
// Under the hood, everything is organized under three subpackages:
//
//	sequence/    — Sequence[T] abstraction, slice/rune/byte adapters, comparators
//	levenshtein/ — edit distance & edit scripts
//	runs/        — repeated-run detection
//
// Quick example:
//
//	levenshtein.Strings("kitten", "sitting")                        // 3
//	runs.FindRepeatedRuns([]string{"a", "a", "a", "b", "c", "c"}, 2) // [0 4]
//
//	go get github.com/katalvlaran/seqmetric
package seqmetric
