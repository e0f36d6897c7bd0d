package reduce

import "github.com/EmilyShepherd/stream-reduce-go/pkg/stream"

// A Folder aggregates every element of a sequence unconditionally. It
// is the named form of the step function passed to [Fold], and the
// shape [SeqFold] decodes through.
type Folder[E, A any] interface {
	// Init produces the starting accumulator.
	Init() A

	// Fold combines one element into the accumulator.
	Fold(acc A, item E) A
}

// FolderFunc adapts an initial value and a combine function into a
// [Folder]. It carries state, so it suits the closure entry points and
// pre-populated embedded fields rather than zero value construction.
type FolderFunc[E, A any] struct {
	Start   A
	Combine func(acc A, item E) A
}

func (f FolderFunc[E, A]) Init() A {
	return f.Start
}

func (f FolderFunc[E, A]) Fold(acc A, item E) A {
	return f.Combine(acc, item)
}

// folder adapts a Folder onto the full Reducer contract. A fold has no
// early exit, so its stop type is Never.
type folder[E, A any] struct {
	impl Folder[E, A]
}

func (f folder[E, A]) Init() A {
	return f.impl.Init()
}

func (f folder[E, A]) Step(acc A, item E) Control[Never, A] {
	return Continue[Never](f.impl.Fold(acc, item))
}

func (f folder[E, A]) Finalize(last Control[Never, A]) A {
	if last.IsStop() {
		panic("reduce: fold finalized with a stop signal")
	}
	return last.Acc()
}

// Fold combines every element of seq into a single value, starting
// from init. combine is called once per element, in sequence order.
func Fold[E, A any](seq stream.Stream[E], init A, combine func(acc A, item E) A) (A, error) {
	return FoldWith[E, A](seq, FolderFunc[E, A]{Start: init, Combine: combine})
}

// FoldWith runs a named [Folder] implementation over seq.
func FoldWith[E, A any](seq stream.Stream[E], f Folder[E, A]) (A, error) {
	return Drive[E, A, Never, A](seq, folder[E, A]{impl: f})
}
