package sequence

import "reflect"

// Sequence is an ordered, finite, randomly indexable list of T.
// Implementations must return the same element for the same index for the
// whole duration of a call that borrows them.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i, 0 ≤ i < Len().
	At(i int) T
}

// Slice adapts a Go slice to Sequence without copying.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Of builds a Slice from its arguments.
func Of[T any](xs ...T) Slice[T] { return Slice[T](xs) }

// Runes splits s into its Unicode code points, so a multi-byte
// character such as "é" is a single element.
func Runes(s string) Slice[rune] { return Slice[rune]([]rune(s)) }

// Bytes adapts b without copying.
func Bytes(b []byte) Slice[byte] { return Slice[byte](b) }

// IsAbsent reports whether s is the nil interface value.
func IsAbsent[T any](s Sequence[T]) bool { return s == nil }

// Len returns s.Len(), or 0 when s is absent.
func Len[T any](s Sequence[T]) int {
	if s == nil {
		return 0
	}

	return s.Len()
}

// EqualFunc reports whether two elements are equal.
// It should be reflexive and symmetric for results to be meaningful.
type EqualFunc[T any] func(x, y T) bool

// Equal returns the intrinsic == comparator for comparable T.
func Equal[T comparable]() EqualFunc[T] {
	return func(x, y T) bool { return x == y }
}

// DeepEqual returns a comparator backed by reflect.DeepEqual.
// It is the value-equality fallback for element types that are not comparable.
func DeepEqual[T any]() EqualFunc[T] {
	return func(x, y T) bool { return reflect.DeepEqual(x, y) }
}

// OrDefault returns eq, or DeepEqual when eq is nil.
func OrDefault[T any](eq EqualFunc[T]) EqualFunc[T] {
	if eq == nil {
		return DeepEqual[T]()
	}

	return eq
}
