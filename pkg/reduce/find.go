package reduce

import "github.com/EmilyShepherd/stream-reduce-go/pkg/stream"

// A Matcher decides whether an element is the one being searched for.
// Match receives a pointer so that large elements are not copied per
// probe; implementations must not retain it. It is the named form of
// the predicate passed to [Find], and the shape [SeqFind] decodes
// through.
type Matcher[E any] interface {
	Match(item *E) bool
}

// MatcherFunc adapts a plain predicate into a [Matcher].
type MatcherFunc[E any] func(item *E) bool

func (f MatcherFunc[E]) Match(item *E) bool {
	return f(item)
}

// found is the terminal value of a find reduction.
type found[E any] struct {
	item E
	ok   bool
}

type finder[E any] struct {
	impl Matcher[E]
}

func (f finder[E]) Init() struct{} {
	return struct{}{}
}

func (f finder[E]) Step(_ struct{}, item E) Control[E, struct{}] {
	if f.impl.Match(&item) {
		return Stop[struct{}](item)
	}
	return Continue[E](struct{}{})
}

func (f finder[E]) Finalize(last Control[E, struct{}]) found[E] {
	if last.IsStop() {
		return found[E]{item: last.Brk(), ok: true}
	}
	return found[E]{}
}

// Find returns the first element of seq for which match reports true.
// The boolean result reports whether any element matched. Elements
// after the match are not handed to match, but they are still decoded,
// so a malformed element anywhere in the sequence fails the search.
func Find[E any](seq stream.Stream[E], match func(item *E) bool) (E, bool, error) {
	return FindWith[E](seq, MatcherFunc[E](match))
}

// FindWith runs a named [Matcher] implementation over seq.
func FindWith[E any](seq stream.Stream[E], m Matcher[E]) (E, bool, error) {
	res, err := Drive[E, struct{}, E, found[E]](seq, finder[E]{impl: m})
	if err != nil {
		var zero E
		return zero, false, err
	}
	return res.item, res.ok, nil
}
