// Package reduce folds, searches and visits sequences of records while
// they are still being decoded, so that a document containing a very
// large sequence can be processed without the sequence ever being held
// in memory.
//
// There are two ways in. The functions [Fold], [TryFold], [ForEach]
// and [Find] run a reduction over any [stream.Stream] cursor and
// accept ordinary closures. The field types [SeqFold], [SeqTryFold],
// [SeqForEach] and [SeqFind] embed a reduction into a struct, so that
// a sequence buried anywhere inside a JSON document is reduced as a
// side effect of decoding the document; these decode through named
// reducer types rather than closures, because decoding starts from a
// zero value.
//
// Every entry point shares one engine, [Drive], and with it one
// guarantee: the sequence is always consumed in full, even when a
// reduction stops early, so the underlying parser is left in a usable
// state.
package reduce

import (
	"errors"
	"io"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

// A Reducer aggregates the elements of a sequence into a single value.
//
// It is the full contract behind the simpler [Folder], [TryFolder],
// [Sink] and [Matcher] shapes; most code wants one of those instead.
// The four type parameters are the element consumed, the accumulator
// threaded between steps, the payload of an early stop, and the value
// the caller finally receives.
type Reducer[E, A, B, V any] interface {
	// Init produces the starting accumulator. It is called exactly
	// once per reduction, before any element is decoded.
	Init() A

	// Step consumes one element together with the current accumulator
	// and decides whether the reduction carries on. It is called once
	// per element, in sequence order.
	Step(acc A, item E) Control[B, A]

	// Finalize converts the last signal of the run into the caller's
	// value. It must accept both a continue signal (the sequence ran
	// out) and a stop signal (a step ended the run).
	Finalize(last Control[B, A]) V
}

// Drive runs a full reduction of seq through r.
//
// Elements are pulled from seq one at a time and fed to r.Step in
// order. The run ends when seq reports io.EOF or when a step signals
// stop. After a stop the remaining elements are still decoded and
// discarded until the sequence is exhausted: parsers expect any
// structure they opened to be consumed in full, and abandoning a
// sequence half-read would corrupt everything decoded after it.
//
// Any decode error, before or after a stop, aborts the reduction and
// is returned without Finalize being called.
//
// A panic in a reducer method is not recovered; it propagates, and the
// sequence may be left partly consumed.
func Drive[E, A, B, V any](seq stream.Stream[E], r Reducer[E, A, B, V]) (V, error) {
	acc := r.Init()

	for {
		item, err := seq.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return r.Finalize(Continue[B](acc)), nil
			}
			var zero V
			return zero, err
		}

		sig := r.Step(acc, item)
		if sig.IsStop() {
			if err := drain(seq); err != nil {
				var zero V
				return zero, err
			}
			return r.Finalize(sig), nil
		}
		acc = sig.Acc()
	}
}

// drain decodes and discards the rest of the sequence.
func drain[E any](seq stream.Stream[E]) error {
	for {
		if _, err := seq.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
