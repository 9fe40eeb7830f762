package extract

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Downloader fetches one page body. Replaced by a fake in tests.
type Downloader interface {
	Download(url string) (string, error)
}

type HTTPDownloader struct {
	client http.Client
}

func NewHTTPDownloader(timeout time.Duration) *HTTPDownloader {
	return &HTTPDownloader{
		client: http.Client{
			Timeout: timeout,
		},
	}
}

func (d *HTTPDownloader) Download(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("could not create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not get response from %s: %w", url, err)
	}

	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read body from %s: %w", url, err)
	}

	return string(body), nil
}
