package sitecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lastModified = "Mon, 02 Jan 2006 15:04:05 GMT"

func testServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tenkit-test", r.Header.Get("User-Agent"))
		w.Header().Set("Last-Modified", lastModified)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestChecker_Run(t *testing.T) {
	server := testServer(t)
	urls := []string{
		server.URL + "/ok",
		server.URL + "/broken",
		server.URL + "/plain",
	}

	results := New(urls).WithUserAgent("tenkit-test").Run(
		context.Background())
	require.Len(t, results, len(urls))

	for i, result := range results {
		assert.Equal(t, urls[i], result.URL, "input order not kept")
		assert.NoError(t, result.Err)
	}

	assert.Equal(t, http.StatusOK, results[0].StatusCode)
	assert.True(t, results[0].OK())
	wantModified := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, wantModified, results[0].LastModified)

	assert.Equal(t, http.StatusInternalServerError, results[1].StatusCode)
	assert.False(t, results[1].OK())

	assert.True(t, results[2].OK())
	assert.True(t, results[2].LastModified.IsZero())
}

func TestChecker_Run_unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	live := testServer(t)
	results := New([]string{deadURL, live.URL + "/plain"}).
		WithUserAgent("tenkit-test").
		Run(context.Background())
	require.Len(t, results, 2)

	require.Error(t, results[0].Err)
	assert.False(t, results[0].OK())
	assert.True(t, results[1].OK(), "one dead endpoint aborted the rest")
}

func TestChecker_Run_limited(t *testing.T) {
	server := testServer(t)
	var urls []string
	for range 8 {
		urls = append(urls, server.URL+"/plain")
	}

	results := New(urls).WithUserAgent("tenkit-test").WithLimit(1).
		Run(context.Background())
	require.Len(t, results, len(urls))
	for _, result := range results {
		assert.True(t, result.OK())
	}
}

func TestChecker_Run_timeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	results := New([]string{server.URL + "/slow"}).
		WithTimeout(50 * time.Millisecond).
		Run(context.Background())
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestChecker_WithHttpClient(t *testing.T) {
	checker := New(nil)
	httpClient := &http.Client{}
	assert.Same(t, checker, checker.WithHttpClient(httpClient))
	assert.Same(t, httpClient, checker.client)
}

func TestDefaultEndpoints(t *testing.T) {
	require.NotEmpty(t, DefaultEndpoints)
	for _, url := range DefaultEndpoints {
		assert.Contains(t, url, "sec.gov")
	}
}
