package httpx_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"stocksummary-service/internal/infrastructure/httpx"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func fakeClient(body string, code int, capture **http.Request) *http.Client {
	return &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) *http.Response {
			if capture != nil {
				*capture = r
			}
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    r,
			}
		}),
	}
}

func TestDoJSON_DecodesBody(t *testing.T) {
	t.Parallel()
	c := &httpx.Client{HTTP: fakeClient(`{"value": 42}`, 200, nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	var out struct {
		Value int `json:"value"`
	}
	require.NoError(t, c.DoJSON(req, &out))
	require.Equal(t, 42, out.Value)
}

func TestDoJSON_SetsHeaders(t *testing.T) {
	t.Parallel()
	var got *http.Request
	c := &httpx.Client{
		HTTP:    fakeClient(`{}`, 200, &got),
		Headers: map[string]string{"key": "secret"},
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, c.DoJSON(req, &out))
	require.Equal(t, "secret", got.Header.Get("key"))
}

func TestDoJSON_NonOKStatus(t *testing.T) {
	t.Parallel()
	c := &httpx.Client{HTTP: fakeClient(`{}`, 500, nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	var out map[string]any
	require.Error(t, c.DoJSON(req, &out))
}

func TestDoJSON_NonJSONBody(t *testing.T) {
	t.Parallel()
	c := &httpx.Client{HTTP: fakeClient(`<html>oops</html>`, 200, nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	var out map[string]any
	require.Error(t, c.DoJSON(req, &out))
}
