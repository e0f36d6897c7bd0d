package reduce

import "github.com/EmilyShepherd/stream-reduce-go/pkg/stream"

// A TryFolder aggregates elements with the right to stop early. Each
// step returns a [Control] signal: continue with the next accumulator,
// or stop with a payload of type B. It is the named form of the step
// function passed to [TryFold], and the shape [SeqTryFold] decodes
// through.
type TryFolder[E, A, B any] interface {
	// Init produces the starting accumulator.
	Init() A

	// TryFold combines one element into the accumulator, or ends the
	// run.
	TryFold(acc A, item E) Control[B, A]
}

// TryFolderFunc adapts an initial value and a step function into a
// [TryFolder].
type TryFolderFunc[E, A, B any] struct {
	Start A
	Step  func(acc A, item E) Control[B, A]
}

func (f TryFolderFunc[E, A, B]) Init() A {
	return f.Start
}

func (f TryFolderFunc[E, A, B]) TryFold(acc A, item E) Control[B, A] {
	return f.Step(acc, item)
}

type tryFolder[E, A, B any] struct {
	impl TryFolder[E, A, B]
}

func (t tryFolder[E, A, B]) Init() A {
	return t.impl.Init()
}

func (t tryFolder[E, A, B]) Step(acc A, item E) Control[B, A] {
	return t.impl.TryFold(acc, item)
}

func (t tryFolder[E, A, B]) Finalize(last Control[B, A]) Control[B, A] {
	return last
}

// TryFold folds seq with the right to stop early. The returned signal
// reports how the run ended: IsStop is true with the payload in Brk
// when a step ended it, otherwise Acc holds the accumulator for the
// fully consumed sequence. Even when a step stops early the rest of
// the sequence is decoded, so a decode error anywhere can surface.
func TryFold[E, A, B any](seq stream.Stream[E], init A, step func(acc A, item E) Control[B, A]) (Control[B, A], error) {
	return TryFoldWith[E, A, B](seq, TryFolderFunc[E, A, B]{Start: init, Step: step})
}

// TryFoldWith runs a named [TryFolder] implementation over seq.
func TryFoldWith[E, A, B any](seq stream.Stream[E], f TryFolder[E, A, B]) (Control[B, A], error) {
	return Drive[E, A, B, Control[B, A]](seq, tryFolder[E, A, B]{impl: f})
}
