// Package models содержит доменные структуры пользовательских коллекций:
// оценки контента и список "смотреть позже".
package models

import "time"

// Типы контента внешнего каталога.
const (
	// ContentTypeMovie — фильм.
	ContentTypeMovie = "movie"
	// ContentTypeTV — сериал.
	ContentTypeTV = "tv"
)

// Rating — оценка контента пользователем.
// На пару (ContentID, ContentType) у пользователя хранится не более одной записи,
// повторная оценка перезаписывает существующую.
type Rating struct {
	ContentID   string    `json:"contentId"`   // Идентификатор контента во внешнем каталоге
	ContentType string    `json:"contentType"` // movie или tv
	Rating      int       `json:"rating"`      // Оценка от 1 до 5
	CreatedAt   time.Time `json:"createdAt"`   // Обновляется при перезаписи оценки
}

// SavedItem — элемент списка "смотреть позже".
// Метаданные (название, постер, описание) — снимок данных внешнего каталога
// на момент сохранения, при изменении источника не обновляются.
type SavedItem struct {
	ContentID    string    `json:"contentId"`
	ContentType  string    `json:"contentType"`
	Title        string    `json:"title"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	SavedAt      time.Time `json:"savedAt"`
}
