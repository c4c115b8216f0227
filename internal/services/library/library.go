// Package services содержит бизнес-логику пользовательских коллекций:
// оценок контента и списка "смотреть позже".
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sabrinaflix/backend/internal/models"
)

// LibraryRepository определяет методы хранилища для коллекций пользователя.
type LibraryRepository interface {
	// UpsertRating сохраняет или перезаписывает оценку контента.
	UpsertRating(ctx context.Context, userUID string, rating models.Rating) error
	// GetRating возвращает оценку или (nil, nil), если её нет.
	GetRating(ctx context.Context, userUID, contentID, contentType string) (*models.Rating, error)
	// InsertSavedItem добавляет элемент или возвращает ErrAlreadySaved.
	InsertSavedItem(ctx context.Context, userUID string, item models.SavedItem) error
	// DeleteSavedItem удаляет элемент; отсутствие записи не ошибка.
	DeleteSavedItem(ctx context.Context, userUID, contentID, contentType string) error
	// ListSavedItems возвращает элементы в порядке добавления.
	ListSavedItems(ctx context.Context, userUID string) ([]*models.SavedItem, error)
	// SavedItemExists проверяет наличие элемента в списке.
	SavedItemExists(ctx context.Context, userUID, contentID, contentType string) (bool, error)
}

// LibraryService реализует операции над коллекциями пользователя.
// Обе коллекции принадлежат пользователю и не имеют собственного жизненного цикла.
type LibraryService struct {
	repo LibraryRepository
	log  *slog.Logger
}

// NewLibraryService создает новый экземпляр LibraryService.
func NewLibraryService(repo LibraryRepository, log *slog.Logger) *LibraryService {
	return &LibraryService{
		repo: repo,
		log:  log,
	}
}

// RateContent сохраняет оценку контента. Повторная оценка той же пары
// (contentID, contentType) перезаписывает значение и обновляет created_at,
// поэтому операция идемпотентна по составу коллекции.
func (s *LibraryService) RateContent(ctx context.Context, userUID string, rating models.Rating) error {
	const op = "library.RateContent"

	if err := s.repo.UpsertRating(ctx, userUID, rating); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("rating saved",
		slog.String("user_uid", userUID),
		slog.String("content_id", rating.ContentID),
		slog.Int("rating", rating.Rating))
	return nil
}

// GetRating возвращает оценку пользователя для контента или nil, если её нет.
func (s *LibraryService) GetRating(ctx context.Context, userUID, contentID, contentType string) (*models.Rating, error) {
	return s.repo.GetRating(ctx, userUID, contentID, contentType)
}

// SaveItem добавляет контент в список "смотреть позже".
// Дубликат отклоняется с repository.ErrAlreadySaved, а не сливается.
func (s *LibraryService) SaveItem(ctx context.Context, userUID string, item models.SavedItem) error {
	const op = "library.SaveItem"

	if err := s.repo.InsertSavedItem(ctx, userUID, item); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("item saved for later",
		slog.String("user_uid", userUID),
		slog.String("content_id", item.ContentID))
	return nil
}

// RemoveItem удаляет контент из списка и возвращает оставшиеся элементы.
// Повторное удаление — no-op, не ошибка.
func (s *LibraryService) RemoveItem(ctx context.Context, userUID, contentID, contentType string) ([]*models.SavedItem, error) {
	const op = "library.RemoveItem"

	if err := s.repo.DeleteSavedItem(ctx, userUID, contentID, contentType); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.repo.ListSavedItems(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListSavedItems возвращает список пользователя в порядке добавления.
func (s *LibraryService) ListSavedItems(ctx context.Context, userUID string) ([]*models.SavedItem, error) {
	return s.repo.ListSavedItems(ctx, userUID)
}

// CheckSaved сообщает, сохранён ли контент в списке пользователя.
func (s *LibraryService) CheckSaved(ctx context.Context, userUID, contentID, contentType string) (bool, error) {
	return s.repo.SavedItemExists(ctx, userUID, contentID, contentType)
}
