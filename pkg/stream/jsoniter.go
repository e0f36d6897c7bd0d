package stream

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

type iterStream[E any] struct {
	it       *jsoniter.Iterator
	finished bool
	err      error
}

// Iterate returns a Stream[E] over the elements of the array at the
// iterator's current position. json-iterator reads each element
// straight out of its buffered input, so this cursor is the cheaper
// choice for hot paths; it is otherwise interchangeable with
// [Elements].
func Iterate[E any](it *jsoniter.Iterator) Stream[E] {
	return &iterStream[E]{it: it}
}

func (is *iterStream[E]) Next() (E, error) {
	var e E

	if is.err != nil {
		return e, is.err
	}
	if is.finished {
		return e, io.EOF
	}

	if !is.it.ReadArray() {
		is.finished = true
		if err := is.it.Error; err != nil && err != io.EOF {
			is.err = err
			return e, err
		}
		return e, io.EOF
	}

	is.it.ReadVal(&e)
	if err := is.it.Error; err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		is.err = err
		return e, err
	}

	return e, nil
}
