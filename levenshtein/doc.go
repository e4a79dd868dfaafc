// Package levenshtein computes the edit (Levenshtein) distance between two
// sequences of arbitrary elements, with optional edit-script recovery and a
// wavefront-parallel matrix fill.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-element insertions, deletions and
//	substitutions that turn sequence a into sequence b.  It is used in:
//	  • Spelling correction & "did you mean" suggestions
//	  • Diffing token streams and DNA-like symbol sequences
//	  • Deduplicating near-identical records
//
// ✨ Key features:
//   - generic over T: == for comparable types, injected EqualFunc otherwise
//   - TwoRows mode (default): O(min(N,M)) memory, distance only
//   - FullMatrix mode: flat (N+1)x(M+1) arena, supports ReturnScript
//   - Wavefront mode: anti-diagonal fill spread over worker goroutines,
//     bit-for-bit identical to FullMatrix
//
// Absent inputs:
//
//	A nil sequence.Sequence (and a nil slice in the slice helpers) is
//	treated as the empty sequence, so Distance(nil, b) == len(b).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqmetric/levenshtein"
//
//	d := levenshtein.Strings("kitten", "sitting") // 3
//
//	opts := levenshtein.DefaultOptions()
//	opts.MemoryMode = levenshtein.FullMatrix
//	opts.ReturnScript = true
//	res, err := levenshtein.Compute(sequence.Runes("kitten"), sequence.Runes("sitting"), nil, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(min(N,M)) (TwoRows) or O(N·M) (FullMatrix, Wavefront)
package levenshtein
