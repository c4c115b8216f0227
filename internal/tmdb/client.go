// Package tmdb реализует клиент внешнего API метаданных каталога (TMDB).
//
// Сервис только читает каталог: списки популярного, карточки фильмов и
// сериалов, ссылки на трейлеры. Ключ API остается на стороне сервера.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sabrinaflix/backend/internal/config"
	"github.com/sabrinaflix/backend/internal/models"
)

// ContentItem — элемент списка каталога.
type ContentItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`          // Фильмы
	Name         string  `json:"name,omitempty"`           // Сериалы
	ReleaseDate  string  `json:"release_date,omitempty"`   // Фильмы
	FirstAirDate string  `json:"first_air_date,omitempty"` // Сериалы
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// Page — страница списка каталога.
type Page struct {
	Page         int           `json:"page"`
	Results      []ContentItem `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Details — карточка фильма или сериала.
type Details struct {
	ContentItem
	Genres []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Runtime          int    `json:"runtime,omitempty"`            // Фильмы, минуты
	NumberOfSeasons  int    `json:"number_of_seasons,omitempty"`  // Сериалы
	NumberOfEpisodes int    `json:"number_of_episodes,omitempty"` // Сериалы
	Status           string `json:"status"`
	Tagline          string `json:"tagline"`
}

// Video — ссылка на трейлер или тизер.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// Client — HTTP-клиент TMDB с ключом API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New создает клиент TMDB из конфигурации.
func New(cfg config.TMDB) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.TimeoutTMDB},
	}
}

// Popular возвращает страницу популярных фильмов или сериалов.
func (c *Client) Popular(ctx context.Context, contentType string, page int) (*Page, error) {
	const op = "tmdb.Popular"

	endpoint := "/movie/popular"
	if contentType == models.ContentTypeTV {
		endpoint = "/tv/popular"
	}

	var res Page
	if err := c.get(ctx, endpoint, url.Values{"page": {strconv.Itoa(page)}}, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &res, nil
}

// GetDetails возвращает карточку фильма или сериала по его идентификатору.
func (c *Client) GetDetails(ctx context.Context, contentType, contentID string) (*Details, error) {
	const op = "tmdb.GetDetails"

	var res Details
	if err := c.get(ctx, "/"+contentType+"/"+url.PathEscape(contentID), nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &res, nil
}

// GetVideos возвращает трейлеры и тизеры для контента.
func (c *Client) GetVideos(ctx context.Context, contentType, contentID string) ([]Video, error) {
	const op = "tmdb.GetVideos"

	var res videosResponse
	if err := c.get(ctx, "/"+contentType+"/"+url.PathEscape(contentID)+"/videos", nil, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return err
	}
	q := u.Query()
	for key, vals := range params {
		for _, v := range vals {
			q.Set(key, v)
		}
	}
	q.Set("api_key", c.apiKey)
	q.Set("language", "en-US")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata api returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// EmbedPlayerURL собирает ссылку встроенного проигрывателя YouTube
// для трейлера с указанным ключом.
func EmbedPlayerURL(videoKey string) string {
	return "https://www.youtube.com/embed/" + url.PathEscape(videoKey) +
		"?autoplay=1&controls=1&modestbranding=1&rel=0&playsinline=1"
}
