package repository

import (
	"context"
	"fmt"

	"github.com/sabrinaflix/backend/internal/models"
)

// InsertSavedItem добавляет контент в список "смотреть позже".
// Повторное сохранение той же пары (content_id, content_type) отклоняется
// уникальным ограничением таблицы и возвращает ErrAlreadySaved.
func (s *Storage) InsertSavedItem(ctx context.Context, userUID string, item models.SavedItem) error {
	const op = "storage.InsertSavedItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO saved_items
			      (user_uid, content_id, content_type, title, poster_path, backdrop_path, overview, saved_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			  ON CONFLICT (user_uid, content_id, content_type) DO NOTHING;`
	res, err := s.DB.ExecContext(ctx, query,
		userUID, item.ContentID, item.ContentType, item.Title,
		item.PosterPath, item.BackdropPath, item.Overview)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrAlreadySaved)
	}
	return nil
}

// DeleteSavedItem удаляет контент из списка. Отсутствие записи не считается
// ошибкой: повторное удаление завершается успешно.
func (s *Storage) DeleteSavedItem(ctx context.Context, userUID, contentID, contentType string) error {
	const op = "storage.DeleteSavedItem"

	query := `DELETE FROM saved_items
			  WHERE user_uid = $1 AND content_id = $2 AND content_type = $3`
	if _, err := s.DB.ExecContext(ctx, query, userUID, contentID, contentType); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListSavedItems возвращает все сохранённые элементы пользователя
// в порядке добавления.
func (s *Storage) ListSavedItems(ctx context.Context, userUID string) ([]*models.SavedItem, error) {
	const op = "storage.ListSavedItems"

	query := `SELECT content_id, content_type, title, poster_path, backdrop_path, overview, saved_at
			  FROM saved_items
			  WHERE user_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SavedItem
	for rows.Next() {
		var item models.SavedItem
		if err = rows.Scan(&item.ContentID, &item.ContentType, &item.Title,
			&item.PosterPath, &item.BackdropPath, &item.Overview, &item.SavedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SavedItemExists проверяет, сохранён ли контент в списке пользователя.
func (s *Storage) SavedItemExists(ctx context.Context, userUID, contentID, contentType string) (bool, error) {
	const op = "storage.SavedItemExists"

	var exists bool
	query := `SELECT EXISTS (
			      SELECT 1 FROM saved_items
			      WHERE user_uid = $1 AND content_id = $2 AND content_type = $3)`
	if err := s.DB.QueryRowContext(ctx, query, userUID, contentID, contentType).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
