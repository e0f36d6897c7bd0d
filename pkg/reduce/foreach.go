package reduce

import "github.com/EmilyShepherd/stream-reduce-go/pkg/stream"

// A Sink consumes elements for their side effects. It is the named
// form of the visit function passed to [ForEach], and the shape
// [SeqForEach] decodes through.
type Sink[E any] interface {
	Accept(item E)
}

// SinkFunc adapts a plain function into a [Sink].
type SinkFunc[E any] func(item E)

func (f SinkFunc[E]) Accept(item E) {
	f(item)
}

type forEach[E any] struct {
	impl Sink[E]
}

func (f forEach[E]) Init() struct{} {
	return struct{}{}
}

func (f forEach[E]) Step(_ struct{}, item E) Control[Never, struct{}] {
	f.impl.Accept(item)
	return Continue[Never](struct{}{})
}

func (f forEach[E]) Finalize(last Control[Never, struct{}]) struct{} {
	if last.IsStop() {
		panic("reduce: for-each finalized with a stop signal")
	}
	return struct{}{}
}

// ForEach calls visit once per element of seq, in sequence order.
func ForEach[E any](seq stream.Stream[E], visit func(item E)) error {
	return ForEachWith[E](seq, SinkFunc[E](visit))
}

// ForEachWith runs a named [Sink] implementation over seq.
func ForEachWith[E any](seq stream.Stream[E], s Sink[E]) error {
	_, err := Drive[E, struct{}, Never, struct{}](seq, forEach[E]{impl: s})
	return err
}
