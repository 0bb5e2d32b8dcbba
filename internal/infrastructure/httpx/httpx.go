package httpx

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Client is a small wrapper around http.Client for JSON APIs. Headers are
// applied to every request (static API keys live here). No retries: a failed
// call surfaces to the caller as-is.
type Client struct {
	HTTP    *http.Client
	Headers map[string]string
}

// New returns a Client with transport defaults suited for a handful of
// outbound calls per run.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}}
}

// DoJSON executes the request and decodes a 200 JSON response into out.
func (c *Client) DoJSON(req *http.Request, out any) error {
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
