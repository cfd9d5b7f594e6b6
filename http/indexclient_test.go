package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/portsift"
	portsifthttp "github.com/fwojciec/portsift/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexClient_Search(t *testing.T) {
	t.Parallel()

	var query map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query = map[string]string{
			"url":    q.Get("url"),
			"output": q.Get("output"),
			"fl":     q.Get("fl"),
			"page":   q.Get("page"),
		}
		w.Write([]byte(`{"url": "https://x.edu/login"}
not json at all
{"status": "200"}

{"url": "https://y.edu/admin"}
`))
	}))
	defer ts.Close()

	c := portsifthttp.NewIndexClient(portsifthttp.WithIndexURL(ts.URL))
	urls, err := c.Search(context.Background(), "*.edu/*", 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x.edu/login", "https://y.edu/admin"}, urls)
	assert.Equal(t, map[string]string{
		"url":    "*.edu/*",
		"output": "json",
		"fl":     "url",
		"page":   "3",
	}, query)
}

func TestIndexClient_NotFoundMeansExhausted(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := portsifthttp.NewIndexClient(portsifthttp.WithIndexURL(ts.URL))
	_, err := c.Search(context.Background(), "*.edu/*", 99)

	assert.Equal(t, portsift.ENOTFOUND, portsift.ErrorCode(err))
}

func TestIndexClient_ServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := portsifthttp.NewIndexClient(portsifthttp.WithIndexURL(ts.URL))
	_, err := c.Search(context.Background(), "*.edu/*", 0)

	assert.Equal(t, portsift.EUNAVAILABLE, portsift.ErrorCode(err))
}

func TestIndexClient_ConnectionErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	c := portsifthttp.NewIndexClient(portsifthttp.WithIndexURL(ts.URL))
	_, err := c.Search(context.Background(), "*.edu/*", 0)

	require.Error(t, err)
	assert.Equal(t, portsift.EINTERNAL, portsift.ErrorCode(err), "transport errors carry no application code")
}
