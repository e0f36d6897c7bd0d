// Package reducers provides ready made reducers for the sequence
// reduction entry points in package reduce. Everything here implements
// the Folder shape; the reducers whose type alone determines their
// behavior are usable from a zero value, so they also work as the
// reducer type parameter of an embedded SeqFold field.
package reducers

// Count tallies the number of elements in a sequence, ignoring their
// content.
type Count[E any] struct{}

func (Count[E]) Init() int {
	return 0
}

func (Count[E]) Fold(acc int, _ E) int {
	return acc + 1
}

// Distinct collects the set of distinct element values.
type Distinct[E comparable] struct{}

func (Distinct[E]) Init() map[E]struct{} {
	return make(map[E]struct{})
}

func (Distinct[E]) Fold(acc map[E]struct{}, item E) map[E]struct{} {
	acc[item] = struct{}{}
	return acc
}

// Latest is the result shape of reducers which keep a single element
// and need to distinguish "nothing seen" from a zero element.
type Latest[E any] struct {
	Item E
	Seen bool
}

// Last remembers only the most recent element of the sequence.
type Last[E any] struct{}

func (Last[E]) Init() Latest[E] {
	return Latest[E]{}
}

func (Last[E]) Fold(_ Latest[E], item E) Latest[E] {
	return Latest[E]{Item: item, Seen: true}
}
