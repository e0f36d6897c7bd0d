package reducers

import "github.com/gammazero/deque"

// LastN keeps a sliding window of the most recent elements. Older
// elements fall off the front as new ones arrive, so the window never
// holds more than its size no matter how long the sequence is.
//
// The zero value keeps nothing. Construct with [NewLastN], or populate
// the reducer field of an embedding struct before decoding.
type LastN[E any] struct {
	n int
}

func NewLastN[E any](n int) LastN[E] {
	return LastN[E]{n: n}
}

func (w LastN[E]) Init() *deque.Deque[E] {
	return deque.New[E]()
}

func (w LastN[E]) Fold(acc *deque.Deque[E], item E) *deque.Deque[E] {
	acc.PushBack(item)
	if acc.Len() > w.n {
		acc.PopFront()
	}
	return acc
}

// Snapshot copies a window's contents into a slice, oldest first.
func Snapshot[E any](d *deque.Deque[E]) []E {
	out := make([]E, d.Len())
	for i := range out {
		out[i] = d.At(i)
	}
	return out
}
