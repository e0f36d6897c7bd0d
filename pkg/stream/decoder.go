package stream

type decoderStream[T any] struct {
	decoder Decoder
	err     error
}

// FromDecoder returns a Stream[T] which reads one value of T per call
// to Next from the given [Decoder]. This is the natural cursor for
// concatenated documents: JSON Lines, multi-document YAML files and
// CBOR sequences all decode this way.
func FromDecoder[T any](decoder Decoder) Stream[T] {
	return &decoderStream[T]{
		decoder: decoder,
	}
}

// Next() blocks until it can return the next object in the stream.
// Returns io.EOF once the underlying input is exhausted, or an error
// if an object can't be decoded. Either outcome latches: not every
// parser stops at its first failure, but the stream does.
func (sd *decoderStream[T]) Next() (T, error) {
	var t T

	if sd.err != nil {
		return t, sd.err
	}
	if err := sd.decoder.Decode(&t); err != nil {
		sd.err = err
		return t, err
	}

	return t, nil
}
