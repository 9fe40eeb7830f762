package extract

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDownloader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>novinky</body></html>"))
	}))
	defer server.Close()

	body, err := NewHTTPDownloader(5 * time.Second).Download(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>novinky</body></html>", body)
}

func TestHTTPDownloaderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPDownloader(5 * time.Second).Download(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPDownloaderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	_, err := NewHTTPDownloader(time.Second).Download(server.URL)
	assert.Error(t, err)
}
