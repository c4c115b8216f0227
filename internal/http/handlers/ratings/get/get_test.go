package get

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) GetRating(ctx context.Context, userUID, contentID, contentType string) (*models.Rating, error) {
	args := m.Called(ctx, userUID, contentID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestGetRatingHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		stored     *models.Rating
		wantRating any
	}{
		{
			name:       "existing rating",
			stored:     &models.Rating{ContentID: "603", ContentType: models.ContentTypeMovie, Rating: 4},
			wantRating: float64(4),
		},
		{
			name:       "missing rating returns null",
			stored:     nil,
			wantRating: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			serviceMock.On("GetRating", mock.Anything, "user1", "603", models.ContentTypeMovie).
				Return(tt.stored, nil).Once()
			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/ratings/603/movie", nil)
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, "user1"))

			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("contentId", "603")
			rctx.URLParams.Add("contentType", "movie")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, "OK", got["status"])

			data, ok := got["data"].(map[string]any)
			assert.True(t, ok)

			if tt.wantRating == nil {
				assert.Nil(t, data["rating"])
			} else {
				rating, ok := data["rating"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.wantRating, rating["rating"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}

func TestGetRatingHandler_MissingUser(t *testing.T) {
	serviceMock := new(ServiceMock)
	handler := New(newNoopLogger(), serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/ratings/603/movie", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	serviceMock.AssertNotCalled(t, "GetRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
