package stream

import (
	"encoding/json"
	"fmt"
	"io"
)

type arrayStream[E any] struct {
	dec      TokenDecoder
	started  bool
	finished bool
	err      error
}

// Elements returns a Stream[E] over the elements of the array which
// sits at the decoder's current position. The opening bracket is
// consumed by the first call to Next and the closing bracket once the
// last element has been read, which leaves the decoder positioned just
// past the array. Anything following it in the same document can still
// be decoded afterwards, so an array nested inside a larger document
// works the same as one at the top level.
func Elements[E any](dec TokenDecoder) Stream[E] {
	return &arrayStream[E]{dec: dec}
}

func (as *arrayStream[E]) Next() (E, error) {
	var e E

	if as.err != nil {
		return e, as.err
	}
	if as.finished {
		return e, io.EOF
	}

	if !as.started {
		tok, err := as.dec.Token()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return e, as.fail(err)
		}
		// A null in place of the array reads as an empty sequence.
		if tok == nil {
			as.finished = true
			return e, io.EOF
		}
		if tok != json.Token(json.Delim('[')) {
			return e, as.fail(fmt.Errorf("expected %q in document, got %v", "[", tok))
		}
		as.started = true
	}

	if !as.dec.More() {
		tok, err := as.dec.Token()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return e, as.fail(err)
		}
		if tok != json.Token(json.Delim(']')) {
			return e, as.fail(fmt.Errorf("expected %q in document, got %v", "]", tok))
		}
		as.finished = true
		return e, io.EOF
	}

	if err := as.dec.Decode(&e); err != nil {
		return e, as.fail(err)
	}

	return e, nil
}

// fail latches err so that later calls repeat it instead of pulling
// more tokens from a decoder in an unknown state.
func (as *arrayStream[E]) fail(err error) error {
	as.err = err
	return err
}
