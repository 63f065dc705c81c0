package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/rtfm"
	rtfmhttp "github.com/fwojciec/rtfm/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher, err := rtfmhttp.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("serves repeated requests from the cache", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("cached"))
		}))
		defer server.Close()

		fetcher, err := rtfmhttp.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		first, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		second, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, "cached", first)
		assert.Equal(t, "cached", second)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("returns EUNAVAILABLE for non-200 responses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher, err := rtfmhttp.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.FetchPage(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, rtfm.EUNAVAILABLE, rtfm.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher, err := rtfmhttp.NewFetcher(rtfmhttp.WithTimeout(10 * time.Millisecond))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.FetchPage(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher, err := rtfmhttp.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.FetchPage(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("rejects a non-positive cache size", func(t *testing.T) {
		t.Parallel()

		_, err := rtfmhttp.NewFetcher(rtfmhttp.WithPageCacheSize(0))
		require.Error(t, err)
	})
}
