package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/linkx"
	linkxhttp "github.com/fwojciec/linkx/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Extract(t *testing.T) {
	t.Parallel()

	t.Run("posts url as JSON to /extract", func(t *testing.T) {
		t.Parallel()

		var gotMethod, gotPath, gotContentType string
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = io.WriteString(w, `{"links":[]}`)
		}))
		defer server.Close()

		client := linkxhttp.NewClient(server.URL + "/")
		links, err := client.Extract(context.Background(), "http://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/extract", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, map[string]string{"url": "http://example.com"}, gotBody)
	})

	t.Run("decodes links in response order", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK,
			`{"links":[{"initial":"a","final":"http://x.com/1"},{"initial":"b","final":"http://x.com/2"}]}`)

		links, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.NoError(t, err)
		assert.Equal(t, []linkx.ExtractedLink{
			{Initial: "a", Final: "http://x.com/1"},
			{Initial: "b", Final: "http://x.com/2"},
		}, links)
	})

	t.Run("returns remote error with server message", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusBadRequest, `{"error":"invalid url"}`)

		_, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.Equal(t, linkx.EREMOTE, linkx.ErrorCode(err))
		assert.Equal(t, "invalid url", linkx.ErrorMessage(err))
	})

	t.Run("returns plain error for unparseable error body", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusInternalServerError, `<html>oops</html>`)

		_, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.Equal(t, linkx.EINTERNAL, linkx.ErrorCode(err))
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("ignores non-string error field", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusBadGateway, `{"error":{"code":7}}`)

		_, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.NotEqual(t, linkx.EREMOTE, linkx.ErrorCode(err))
	})

	t.Run("returns internal error when links are missing", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK, `{"result":"ok"}`)

		_, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.Equal(t, linkx.EINTERNAL, linkx.ErrorCode(err))
	})

	t.Run("returns internal error for malformed success body", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK, `not json`)

		_, err := linkxhttp.NewClient(server.URL).Extract(context.Background(), "http://example.com")

		require.Error(t, err)
		assert.Equal(t, linkx.EINTERNAL, linkx.ErrorCode(err))
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			_, _ = io.WriteString(w, `{"links":[]}`)
		}))
		defer server.Close()

		client := linkxhttp.NewClient(server.URL, linkxhttp.WithUserAgent("linkx-test/1.0"))
		_, err := client.Extract(context.Background(), "http://example.com")

		require.NoError(t, err)
		assert.Equal(t, "linkx-test/1.0", gotUA)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = io.WriteString(w, `{"links":[]}`)
		}))
		defer server.Close()

		client := linkxhttp.NewClient(server.URL, linkxhttp.WithTimeout(10*time.Millisecond))
		_, err := client.Extract(context.Background(), "http://example.com")
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK, `{"links":[]}`)

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := linkxhttp.NewClient(server.URL).Extract(ctx, "http://example.com")
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		client := linkxhttp.NewClient("http://non-existent-host.invalid", linkxhttp.WithTimeout(100*time.Millisecond))
		_, err := client.Extract(context.Background(), "http://example.com")
		require.Error(t, err)
	})
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, linkxhttp.DefaultBaseURL, linkxhttp.NewClient("").BaseURL())
}
