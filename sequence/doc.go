// Package sequence defines the read-only, randomly indexable sequence
// abstraction shared by the levenshtein and runs packages, together with
// the equality comparators they accept.
//
// 🚀 What is a Sequence?
//
//	Any ordered, finite list of elements that can report its length and
//	return the element at an index.  The algorithms only borrow it for the
//	duration of a call and never mutate it.
//
// ✨ Key features:
//   - Slice[T] adapts any Go slice without copying
//   - Runes / Bytes turn strings and byte slices into sequences
//   - EqualFunc[T] injects custom equality for non-comparable element types
//
// Absent vs empty:
//
//	A nil Sequence interface value is the absent sequence.  A nil or empty
//	Slice[T] wrapped in the interface is an empty sequence, not an absent
//	one.  Use IsAbsent to tell them apart and Len to treat both as empty.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqmetric/sequence"
//
//	s := sequence.Runes("kitten")
//	eq := sequence.Equal[rune]()
//	fmt.Println(s.Len(), eq(s.At(0), 'k')) // 6 true
package sequence
