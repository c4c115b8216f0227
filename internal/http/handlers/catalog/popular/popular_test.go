package popular

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sabrinaflix/backend/internal/tmdb"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Popular(ctx context.Context, contentType string, page int) (*tmdb.Page, error) {
	args := m.Called(ctx, contentType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPopularHandler_ServeHTTP(t *testing.T) {
	page := &tmdb.Page{
		Page:         2,
		Results:      []tmdb.ContentItem{{ID: 603, Title: "The Matrix"}},
		TotalPages:   10,
		TotalResults: 200,
	}

	tests := []struct {
		name           string
		contentType    string
		url            string
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "popular movies with page",
			contentType: "movie",
			url:         "/catalog/movie/popular?page=2",
			setupMock: func(m *ServiceMock) {
				m.On("Popular", mock.Anything, "movie", 2).Return(page, nil).Once()
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "missing page defaults to first",
			contentType: "tv",
			url:         "/catalog/tv/popular",
			setupMock: func(m *ServiceMock) {
				m.On("Popular", mock.Anything, "tv", 1).Return(page, nil).Once()
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid content type",
			contentType:    "book",
			url:            "/catalog/book/popular",
			setupMock:      func(m *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid content type",
		},
		{
			name:        "upstream failure",
			contentType: "movie",
			url:         "/catalog/movie/popular",
			setupMock: func(m *ServiceMock) {
				m.On("Popular", mock.Anything, "movie", 1).
					Return(nil, errors.New("timeout")).Once()
			},
			wantStatusCode: http.StatusBadGateway,
			wantError:      "metadata provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMock(serviceMock)
			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("contentType", tt.contentType)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, float64(2), data["page"])
				assert.Equal(t, float64(10), data["totalPages"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
