package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sabrinaflix/backend/internal/models"
)

// UpsertRating сохраняет оценку контента. Если пользователь уже оценивал
// пару (content_id, content_type), запись перезаписывается, а created_at
// обновляется. Уникальность гарантируется ограничением таблицы, поэтому
// одновременные запросы не порождают дубликатов.
func (s *Storage) UpsertRating(ctx context.Context, userUID string, rating models.Rating) error {
	const op = "storage.UpsertRating"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO ratings (user_uid, content_id, content_type, rating, created_at)
			  VALUES ($1, $2, $3, $4, now())
			  ON CONFLICT (user_uid, content_id, content_type)
			  DO UPDATE SET rating = EXCLUDED.rating, created_at = now();`
	if _, err := s.DB.ExecContext(ctx, query,
		userUID, rating.ContentID, rating.ContentType, rating.Rating); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetRating возвращает оценку пользователя для указанного контента.
// Если оценки нет, возвращает (nil, nil): отсутствие оценки не ошибка.
func (s *Storage) GetRating(ctx context.Context, userUID, contentID, contentType string) (*models.Rating, error) {
	const op = "storage.GetRating"

	query := `SELECT content_id, content_type, rating, created_at
			  FROM ratings
			  WHERE user_uid = $1 AND content_id = $2 AND content_type = $3`
	r := &models.Rating{}
	err := s.DB.QueryRowContext(ctx, query, userUID, contentID, contentType).
		Scan(&r.ContentID, &r.ContentType, &r.Rating, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}
