package network

import (
	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client is the outbound HTTP client shared by all provider calls.
type Client struct {
	http tls_client.HttpClient
}

func NewClient() (*Client, error) {
	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(30),
	)
	if err != nil {
		return nil, err
	}

	return &Client{http: client}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	return c.http.Do(req)
}
