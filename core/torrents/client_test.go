package torrents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listMoviesBody = `{
	"status": "ok",
	"status_message": "Query was successful",
	"data": {
		"movie_count": 1,
		"movies": [{
			"id": 10,
			"imdb_code": "tt0111161",
			"torrents": [
				{"url": "https://yts.mx/t/1", "hash": "aaa", "quality": "720p", "type": "bluray", "seeds": 40, "peers": 5, "size": "850 MB", "size_bytes": 891289600},
				{"url": "https://yts.mx/t/2", "hash": "bbb", "quality": "1080p", "type": "bluray", "seeds": 90, "peers": 12, "size": "1.7 GB", "size_bytes": 1825361100},
				{"url": "https://yts.mx/t/3", "hash": "ccc", "quality": "3D", "type": "bluray", "seeds": 2, "peers": 0, "size": "2 GB", "size_bytes": 2147483648}
			]
		}]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, zap.NewNop())
	return client, server
}

func TestListTorrents(t *testing.T) {
	t.Run("Returns Torrents", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/list_movies.json", r.URL.Path)
			assert.Equal(t, "tt0111161", r.URL.Query().Get("query_term"))
			w.Write([]byte(listMoviesBody))
		})

		list, err := client.ListTorrents(context.Background(), "tt0111161")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "720p", list[0].Quality)
		assert.Equal(t, 90, list[1].Seeds)
	})

	t.Run("Caches Responses", func(t *testing.T) {
		var hits atomic.Int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write([]byte(listMoviesBody))
		})

		_, err := client.ListTorrents(context.Background(), "tt0111161")
		require.NoError(t, err)
		_, err = client.ListTorrents(context.Background(), "tt0111161")
		require.NoError(t, err)

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ok", "status_message": "ok", "data": {"movie_count": 0, "movies": []}}`))
		})

		list, err := client.ListTorrents(context.Background(), "tt0000000")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Server Error Is Not Cached", func(t *testing.T) {
		var hits atomic.Int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) <= 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(listMoviesBody))
		})

		_, err := client.ListTorrents(context.Background(), "tt0111161")
		require.Error(t, err)

		list, err := client.ListTorrents(context.Background(), "tt0111161")
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("Requires IMDB ID", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://localhost"}, zap.NewNop())
		_, err := client.ListTorrents(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestQualityTorrents(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listMoviesBody))
	})

	list, err := client.QualityTorrents(context.Background(), "tt0111161", nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, tr := range list {
		assert.Contains(t, DefaultQualities, tr.Quality)
	}
}

func TestFilterByQuality(t *testing.T) {
	list := []Torrent{
		{Quality: "720p"},
		{Quality: "3D"},
		{Quality: "1080p"},
	}

	t.Run("Default Allow List", func(t *testing.T) {
		out := FilterByQuality(list, nil)
		require.Len(t, out, 2)
		assert.Equal(t, "720p", out[0].Quality)
		assert.Equal(t, "1080p", out[1].Quality)
	})

	t.Run("Custom Allow List", func(t *testing.T) {
		out := FilterByQuality(list, []string{"3D"})
		require.Len(t, out, 1)
		assert.Equal(t, "3D", out[0].Quality)
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Nil(t, FilterByQuality(nil, nil))
	})
}
