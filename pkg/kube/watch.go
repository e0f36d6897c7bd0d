package kube

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

type Option func(opts *options)

type options struct {
	log        logr.Logger
	decodeFunc func(r io.Reader) stream.Decoder
}

func WithLogger(log logr.Logger) Option {
	return func(opts *options) {
		opts.log = log
	}
}

// WithDecoder replaces the JSON decoder used for watch events, for
// callers that prefer a different parser.
func WithDecoder(decodeFunc func(r io.Reader) stream.Decoder) Option {
	return func(opts *options) {
		opts.decodeFunc = decodeFunc
	}
}

// EventStream turns the response body of a watch request into a
// stream of typed events, so the reduction entry points run over a
// watch exactly as they do over a finite sequence.
//
// A watch has no natural end. Stop closes the underlying body; a Next
// call racing or following it reports io.EOF rather than the read
// error, so a reduction over the stream finalizes cleanly.
type EventStream[T any] struct {
	r       io.ReadCloser
	decoder stream.Decoder
	log     logr.Logger
	sync.Mutex
	stopped bool
}

// Events wraps the body of a watch request.
func Events[T any](r io.ReadCloser, opts ...Option) *EventStream[T] {
	o := options{
		log: logr.Discard(),
		decodeFunc: func(r io.Reader) stream.Decoder {
			return json.NewDecoder(r)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &EventStream[T]{
		r:       r,
		decoder: o.decodeFunc(r),
		log:     o.log,
	}
}

// Next blocks until it can return the next event in the stream.
// Events with a type the watch protocol does not define are reported
// as errors.
func (es *EventStream[T]) Next() (Event[T], error) {
	var ev Event[T]

	if err := es.decoder.Decode(&ev); err != nil {
		if err != io.EOF && es.stopping() {
			es.log.V(1).Info("watch stream stopped", "err", err)
			return ev, io.EOF
		}
		return ev, err
	}

	switch ev.Type {
	case EventTypeAdded, EventTypeModified, EventTypeDeleted, EventTypeBookmark, EventTypeError:
		return ev, nil
	default:
		return ev, fmt.Errorf("got invalid watch event type: %v", ev.Type)
	}
}

// Stop ends the watch and releases the underlying stream.
func (es *EventStream[T]) Stop() {
	es.Lock()
	defer es.Unlock()
	if !es.stopped {
		es.stopped = true
		es.r.Close()
	}
}

// stopping returns true if Stop() was called previously.
func (es *EventStream[T]) stopping() bool {
	es.Lock()
	defer es.Unlock()
	return es.stopped
}
