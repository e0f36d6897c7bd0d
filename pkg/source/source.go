// Package source acquires the serialized documents that reductions run
// over: local files, possibly gzipped, HTTP endpoints with bearer auth,
// and files watched for in place rewrites.
package source

import (
	"net/http"

	"github.com/go-logr/logr"
)

type Option func(opts *options)

type options struct {
	log        logr.Logger
	token      TokenProvider
	httpClient *http.Client
	ca         []byte
}

func defaultOptions() options {
	return options{
		log:   logr.Discard(),
		token: StaticToken(""),
	}
}

// WithLogger routes diagnostics to the given logger; by default they
// are discarded.
func WithLogger(log logr.Logger) Option {
	return func(opts *options) {
		opts.log = log
	}
}

// WithToken attaches bearer credentials to document requests.
func WithToken(tp TokenProvider) Option {
	return func(opts *options) {
		opts.token = tp
	}
}

// WithHTTPClient replaces the http.Client used for document requests,
// for callers that need their own transport or timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = hc
	}
}

// WithCA trusts the given PEM encoded certificate authority for
// document requests, in place of the system pool.
func WithCA(pem []byte) Option {
	return func(opts *options) {
		opts.ca = pem
	}
}
