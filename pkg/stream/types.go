// Package stream implements a set of generic interfaces and classes
// designed to allow sequences of atomic objects to be pulled out of
// serialized documents one at a time, much like one might read chunks
// from an [io.Reader].
//
// The interfaces are deliberately small so that any format parser can
// sit behind them: [encoding/json.Decoder], json-iterator, yaml.v2 and
// fxamacker/cbor all satisfy [Decoder] as-is.
package stream

import "encoding/json"

// A Decoder is able to hydrate an arbitrary variable.
type Decoder interface {
	Decode(v any) error
}

// A TokenDecoder is a Decoder which can additionally step through the
// structural tokens of the document it is reading, which is what
// [Elements] needs in order to enter and leave an array.
// [encoding/json.Decoder] satisfies it.
type TokenDecoder interface {
	Decoder

	// More reports whether the array or object currently being parsed
	// has another element.
	More() bool

	// Token advances past the next delimiter, key or value in the
	// document and returns it.
	Token() (json.Token, error)
}

// A Stream is able to provide a source of atomic data values.
//
// The source of a Stream's data is implementation specific - an example
// may be reading JSON objects from a long running HTTP response.
//
// Exhaustion is reported as [io.EOF]; any other error means the source
// failed to produce or decode a value. Once a Stream has reported
// exhaustion or an error, every further call to Next reports the same
// again, so callers are free to over-read.
type Stream[T any] interface {
	Next() (T, error)
}
