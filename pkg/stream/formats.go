package stream

import (
	"encoding/json"
	"io"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

// JSONArray returns a stream over the elements of a JSON document
// whose top level is a single array.
func JSONArray[E any](r io.Reader) Stream[E] {
	return Elements[E](json.NewDecoder(r))
}

// JSONArrayIter is JSONArray on the json-iterator parser.
func JSONArrayIter[E any](r io.Reader) Stream[E] {
	return Iterate[E](jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, r, 4096))
}

// JSONLines returns a stream over concatenated JSON values: one value
// per line, or simply appended back to back.
func JSONLines[E any](r io.Reader) Stream[E] {
	return FromDecoder[E](json.NewDecoder(r))
}

// YAMLDocuments returns a stream over the documents of a
// multi-document YAML file.
func YAMLDocuments[E any](r io.Reader) Stream[E] {
	return FromDecoder[E](yaml.NewDecoder(r))
}

// CBORSequence returns a stream over a CBOR sequence (RFC 8742): CBOR
// data items appended back to back.
func CBORSequence[E any](r io.Reader) Stream[E] {
	return FromDecoder[E](cbor.NewDecoder(r))
}
