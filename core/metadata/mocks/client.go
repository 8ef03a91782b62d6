package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dvd-tracker/core/metadata"
	"dvd-tracker/core/storage"
)

// Client is a mock implementation of metadata.Client.
type Client struct {
	mock.Mock
}

func (m *Client) SearchMovies(ctx context.Context, query string, page int) (*metadata.SearchPage, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadata.SearchPage), args.Error(1)
}

func (m *Client) Details(ctx context.Context, movieID int) (*metadata.MovieDetails, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadata.MovieDetails), args.Error(1)
}

func (m *Client) Posters(ctx context.Context, movieID int) ([]metadata.Poster, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]metadata.Poster), args.Error(1)
}

func (m *Client) PosterURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

func (m *Client) DownloadPoster(ctx context.Context, store storage.Client, bucket, posterPath string) (string, error) {
	args := m.Called(ctx, store, bucket, posterPath)
	return args.String(0), args.Error(1)
}
