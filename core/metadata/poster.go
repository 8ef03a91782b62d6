package metadata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/minio/minio-go/v7"

	"dvd-tracker/core/storage"
)

// DownloadPoster fetches a poster image and stores it in the poster bucket.
// It returns the object key the image was stored under.
func (c *HTTPClient) DownloadPoster(ctx context.Context, store storage.Client, bucket, posterPath string) (string, error) {
	if posterPath == "" {
		return "", fmt.Errorf("poster path is required")
	}

	posterURL := c.PosterURL(posterPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("poster download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("poster download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read poster body: %w", err)
	}

	key := path.Base(posterPath)
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err = store.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store poster: %w", err)
	}
	return key, nil
}
