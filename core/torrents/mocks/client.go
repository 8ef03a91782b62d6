package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dvd-tracker/core/torrents"
)

// Client is a mock implementation of torrents.Client.
type Client struct {
	mock.Mock
}

func (m *Client) ListTorrents(ctx context.Context, imdbID string) ([]torrents.Torrent, error) {
	args := m.Called(ctx, imdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]torrents.Torrent), args.Error(1)
}

func (m *Client) QualityTorrents(ctx context.Context, imdbID string, qualities []string) ([]torrents.Torrent, error) {
	args := m.Called(ctx, imdbID, qualities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]torrents.Torrent), args.Error(1)
}
