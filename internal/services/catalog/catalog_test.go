package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabrinaflix/backend/internal/tmdb"
)

type MetadataClientMock struct{ mock.Mock }

func (m *MetadataClientMock) Popular(ctx context.Context, contentType string, page int) (*tmdb.Page, error) {
	args := m.Called(ctx, contentType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}
func (m *MetadataClientMock) GetDetails(ctx context.Context, contentType, contentID string) (*tmdb.Details, error) {
	args := m.Called(ctx, contentType, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Details), args.Error(1)
}
func (m *MetadataClientMock) GetVideos(ctx context.Context, contentType, contentID string) ([]tmdb.Video, error) {
	args := m.Called(ctx, contentType, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tmdb.Video), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCatalogService_Popular_CacheMiss(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	page := &tmdb.Page{
		Page: 1,
		Results: []tmdb.ContentItem{
			{ID: 603, Title: "The Matrix"},
		},
		TotalPages:   10,
		TotalResults: 200,
	}

	cacheMock.On("Get", "catalog:popular:movie:1", mock.Anything).Return(false, nil)
	clientMock.On("Popular", mock.Anything, "movie", 1).Return(page, nil)
	cacheMock.On("Set", "catalog:popular:movie:1", page, 10*time.Minute).Return(nil)

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Popular(context.Background(), "movie", 1)
	require.NoError(t, err)
	assert.Equal(t, page, got)

	clientMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestCatalogService_Popular_CacheHit(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "catalog:popular:tv:3", mock.Anything).
		Run(func(args mock.Arguments) {
			page := args.Get(1).(*tmdb.Page)
			page.Page = 3
			page.Results = []tmdb.ContentItem{{ID: 1396, Name: "Breaking Bad"}}
		}).
		Return(true, nil)

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Popular(context.Background(), "tv", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, "Breaking Bad", got.Results[0].Name)

	clientMock.AssertNotCalled(t, "Popular", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_Popular_CacheErrorFallsThrough(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	page := &tmdb.Page{Page: 1}

	cacheMock.On("Get", "catalog:popular:movie:1", mock.Anything).
		Return(false, errors.New("redis down"))
	clientMock.On("Popular", mock.Anything, "movie", 1).Return(page, nil)
	cacheMock.On("Set", "catalog:popular:movie:1", page, 10*time.Minute).
		Return(errors.New("redis down"))

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Popular(context.Background(), "movie", 1)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestCatalogService_Popular_ClientError(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "catalog:popular:movie:1", mock.Anything).Return(false, nil)
	clientMock.On("Popular", mock.Anything, "movie", 1).
		Return(nil, errors.New("metadata api returned 503"))

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Popular(context.Background(), "movie", 1)
	require.Error(t, err)
	assert.Nil(t, got)

	cacheMock.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_Details(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	details := &tmdb.Details{
		ContentItem: tmdb.ContentItem{ID: 603, Title: "The Matrix"},
		Runtime:     136,
	}

	cacheMock.On("Get", "catalog:detail:movie:603", mock.Anything).Return(false, nil)
	clientMock.On("GetDetails", mock.Anything, "movie", "603").Return(details, nil)
	cacheMock.On("Set", "catalog:detail:movie:603", details, time.Hour).Return(nil)

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Details(context.Background(), "movie", "603")
	require.NoError(t, err)
	assert.Equal(t, details, got)

	clientMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestCatalogService_Videos(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	videos := []tmdb.Video{
		{Key: "vKQi3bBA1y8", Name: "Official Trailer", Site: "YouTube", Type: "Trailer"},
	}

	cacheMock.On("Get", "catalog:videos:movie:603", mock.Anything).Return(false, nil)
	clientMock.On("GetVideos", mock.Anything, "movie", "603").Return(videos, nil)
	cacheMock.On("Set", "catalog:videos:movie:603", videos, time.Hour).Return(nil)

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Videos(context.Background(), "movie", "603")
	require.NoError(t, err)
	assert.Equal(t, videos, got)

	clientMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestCatalogService_Trailer(t *testing.T) {
	tests := []struct {
		name    string
		videos  []tmdb.Video
		wantURL string
	}{
		{
			name: "picks first youtube trailer",
			videos: []tmdb.Video{
				{Key: "teaser1", Site: "YouTube", Type: "Teaser"},
				{Key: "vimeo1", Site: "Vimeo", Type: "Trailer"},
				{Key: "vKQi3bBA1y8", Site: "YouTube", Type: "Trailer"},
				{Key: "second", Site: "YouTube", Type: "Trailer"},
			},
			wantURL: tmdb.EmbedPlayerURL("vKQi3bBA1y8"),
		},
		{
			name: "no trailer available",
			videos: []tmdb.Video{
				{Key: "teaser1", Site: "YouTube", Type: "Teaser"},
			},
			wantURL: "",
		},
		{
			name:    "empty video list",
			videos:  []tmdb.Video{},
			wantURL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientMock := new(MetadataClientMock)
			cacheMock := new(CacheMock)

			cacheMock.On("Get", "catalog:videos:movie:603", mock.Anything).Return(false, nil)
			clientMock.On("GetVideos", mock.Anything, "movie", "603").Return(tt.videos, nil)
			cacheMock.On("Set", "catalog:videos:movie:603", tt.videos, time.Hour).Return(nil)

			service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

			got, err := service.Trailer(context.Background(), "movie", "603")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got)
		})
	}
}

func TestCatalogService_Trailer_UpstreamError(t *testing.T) {
	clientMock := new(MetadataClientMock)
	cacheMock := new(CacheMock)

	cacheMock.On("Get", "catalog:videos:movie:603", mock.Anything).Return(false, nil)
	clientMock.On("GetVideos", mock.Anything, "movie", "603").
		Return(nil, errors.New("metadata api returned 500"))

	service := NewCatalogService(clientMock, cacheMock, newNoopLogger())

	got, err := service.Trailer(context.Background(), "movie", "603")
	require.Error(t, err)
	assert.Empty(t, got)
}
