// Package services содержит бизнес-логику прокси внешнего каталога метаданных.
//
// Клиентское приложение ходит за списками и карточками сюда, а не напрямую
// во внешний API: ключ API не покидает сервер, ответы кешируются в Redis.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/tmdb"
)

// Время жизни кешированных ответов каталога.
const (
	listCacheTTL   = 10 * time.Minute
	detailCacheTTL = time.Hour
)

// MetadataClient описывает клиент внешнего API каталога.
type MetadataClient interface {
	// Popular возвращает страницу популярных фильмов или сериалов.
	Popular(ctx context.Context, contentType string, page int) (*tmdb.Page, error)
	// GetDetails возвращает карточку контента.
	GetDetails(ctx context.Context, contentType, contentID string) (*tmdb.Details, error)
	// GetVideos возвращает трейлеры контента.
	GetVideos(ctx context.Context, contentType, contentID string) ([]tmdb.Video, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// CatalogService кеширует и отдает данные внешнего каталога.
type CatalogService struct {
	client MetadataClient
	cache  Cache
	log    *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(client MetadataClient, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Popular возвращает страницу популярного контента, используя кеш.
func (s *CatalogService) Popular(ctx context.Context, contentType string, page int) (*tmdb.Page, error) {
	cacheKey := fmt.Sprintf("catalog:popular:%s:%d", contentType, page)

	var cached tmdb.Page
	if found := s.cacheGet(cacheKey, &cached); found {
		return &cached, nil
	}

	result, err := s.client.Popular(ctx, contentType, page)
	if err != nil {
		return nil, err
	}
	s.cacheSet(cacheKey, result, listCacheTTL)
	return result, nil
}

// Details возвращает карточку контента, используя кеш.
func (s *CatalogService) Details(ctx context.Context, contentType, contentID string) (*tmdb.Details, error) {
	cacheKey := fmt.Sprintf("catalog:detail:%s:%s", contentType, contentID)

	var cached tmdb.Details
	if found := s.cacheGet(cacheKey, &cached); found {
		return &cached, nil
	}

	result, err := s.client.GetDetails(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(cacheKey, result, detailCacheTTL)
	return result, nil
}

// Videos возвращает трейлеры контента, используя кеш.
func (s *CatalogService) Videos(ctx context.Context, contentType, contentID string) ([]tmdb.Video, error) {
	cacheKey := fmt.Sprintf("catalog:videos:%s:%s", contentType, contentID)

	var cached []tmdb.Video
	if found := s.cacheGet(cacheKey, &cached); found {
		return cached, nil
	}

	result, err := s.client.GetVideos(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(cacheKey, result, detailCacheTTL)
	return result, nil
}

// Trailer возвращает первый официальный трейлер контента или пустую строку.
func (s *CatalogService) Trailer(ctx context.Context, contentType, contentID string) (string, error) {
	videos, err := s.Videos(ctx, contentType, contentID)
	if err != nil {
		return "", err
	}
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return tmdb.EmbedPlayerURL(v.Key), nil
		}
	}
	return "", nil
}

func (s *CatalogService) cacheGet(key string, result any) bool {
	found, err := s.cache.Get(key, result)
	if err != nil {
		s.log.Warn("failed to read catalog cache", slog.String("key", key), sl.Err(err))
		return false
	}
	return found
}

func (s *CatalogService) cacheSet(key string, value any, ttl time.Duration) {
	if err := s.cache.Set(key, value, ttl); err != nil {
		s.log.Warn("failed to cache catalog response", slog.String("key", key), sl.Err(err))
	}
}
