package source

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
)

// Client fetches serialized documents over HTTP so they can be reduced
// while the response body streams in.
type Client struct {
	httpClient *http.Client
	token      TokenProvider
}

func NewClient(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if o.ca != nil {
		certPool := x509.NewCertPool()
		certPool.AppendCertsFromPEM(o.ca)
		httpClient.Transport = &http.Transport{TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    certPool,
		}}
	}

	return &Client{
		httpClient: httpClient,
		token:      o.token,
	}
}

// Fetch issues a GET for the document at url and returns the response
// body for streaming. The caller owns closing it.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if token := c.token.Token(); len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 226 {
		defer resp.Body.Close()
		errmsg, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return nil, fmt.Errorf("invalid response code %d for request url %q: %s", resp.StatusCode, url, errmsg)
	}

	return resp.Body, nil
}
