package reduce

import (
	"bytes"
	"encoding/json"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

// SeqFold is a struct field which folds a JSON array in place of
// decoding it. Declare it where the array sits and decode the
// surrounding document as usual; afterwards Value holds the fold
// result and the array itself was never materialized:
//
//	type report struct {
//		Hits reduce.SeqFold[reducers.Count[entry], entry, int] `json:"hits"`
//	}
//
// The reducer is the field's R value at decode time. For a freshly
// allocated document struct that is the zero value of F, so F must be
// a reducer type usable from its zero value; alternatively, populate R
// before decoding. Note that [encoding/json] hands the field the raw
// bytes of the array, so memory is bounded by the array's serialized
// size rather than by its decoded form; when even that is too much,
// decode the document with a [stream.TokenDecoder] and run the
// function entry points over a [stream.Elements] cursor instead.
type SeqFold[F Folder[E, A], E, A any] struct {
	R     F
	Value A
}

func (s *SeqFold[F, E, A]) UnmarshalJSON(data []byte) error {
	v, err := FoldWith[E, A](elementsOf[E](data), s.R)
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

// SeqTryFold is [SeqFold] for reducers with an early exit. After
// decoding, Flow reports how the run ended, exactly as [TryFold]
// returns it.
type SeqTryFold[F TryFolder[E, A, B], E, A, B any] struct {
	R    F
	Flow Control[B, A]
}

func (s *SeqTryFold[F, E, A, B]) UnmarshalJSON(data []byte) error {
	sig, err := TryFoldWith[E, A, B](elementsOf[E](data), s.R)
	if err != nil {
		return err
	}
	s.Flow = sig
	return nil
}

// SeqForEach is [SeqFold] for side effecting visitors. The sink's
// Accept is called once per element during decoding.
type SeqForEach[F Sink[E], E any] struct {
	R F
}

func (s *SeqForEach[F, E]) UnmarshalJSON(data []byte) error {
	return ForEachWith[E](elementsOf[E](data), s.R)
}

// SeqFind is [SeqFold] for searches. After decoding, Item holds the
// first element the matcher accepted and Found reports whether there
// was one. The rest of the array is decoded either way.
type SeqFind[F Matcher[E], E any] struct {
	R     F
	Item  E
	Found bool
}

func (s *SeqFind[F, E]) UnmarshalJSON(data []byte) error {
	item, ok, err := FindWith[E](elementsOf[E](data), s.R)
	if err != nil {
		return err
	}
	s.Item = item
	s.Found = ok
	return nil
}

// elementsOf cursors over the raw bytes of an array.
func elementsOf[E any](data []byte) stream.Stream[E] {
	return stream.Elements[E](json.NewDecoder(bytes.NewReader(data)))
}
