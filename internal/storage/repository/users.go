package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sabrinaflix/backend/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (uid, username, email, password_hash, subscription_status)
			  VALUES ($1, $2, $3, $4, $5);`
	if _, err := s.DB.ExecContext(ctx, query,
		user.UID, user.Username, user.Email, user.PasswordHash,
		user.SubscriptionStatus); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UsernameExists проверяет, зарегистрировано ли уже имя пользователя.
func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "storage.UsernameExists"

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	if err := s.DB.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// EmailExists проверяет, зарегистрирован ли уже адрес электронной почты.
func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "storage.EmailExists"

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"

	query := `SELECT uid, username, email, password_hash, subscription_status,
			      trial_start_date, subscription_end_date, created_at
			  FROM users
			  WHERE username = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"

	query := `SELECT uid, username, email, password_hash, subscription_status,
			      trial_start_date, subscription_end_date, created_at
			  FROM users
			  WHERE uid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userUID), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var trialStart, subscriptionEnd sql.NullTime
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash,
		&u.SubscriptionStatus, &trialStart, &subscriptionEnd, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if trialStart.Valid {
		u.TrialStartDate = &trialStart.Time
	}
	if subscriptionEnd.Valid {
		u.SubscriptionEndDate = &subscriptionEnd.Time
	}
	return u, nil
}

// SetTrialSubscription переводит пользователя в пробный период с указанными датами.
func (s *Storage) SetTrialSubscription(ctx context.Context, userUID string, trialStart, endDate time.Time) error {
	const op = "storage.SetTrialSubscription"

	query := `UPDATE users
			  SET subscription_status = $1,
			      trial_start_date = $2,
			      subscription_end_date = $3
			  WHERE uid = $4`
	res, err := s.DB.ExecContext(ctx, query, models.SubscriptionTrial, trialStart, endDate, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// SetActiveSubscription переводит пользователя в статус active с новой датой окончания.
// Дата окончания перезаписывается, а не продлевается от прежней.
func (s *Storage) SetActiveSubscription(ctx context.Context, userUID string, endDate time.Time) error {
	const op = "storage.SetActiveSubscription"

	query := `UPDATE users
			  SET subscription_status = $1,
			      subscription_end_date = $2
			  WHERE uid = $3`
	res, err := s.DB.ExecContext(ctx, query, models.SubscriptionActive, endDate, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// ExpireLapsedSubscriptions переводит в статус expired всех пользователей,
// у которых срок подписки или пробного периода уже прошёл.
// Возвращает количество обновлённых записей.
func (s *Storage) ExpireLapsedSubscriptions(ctx context.Context) (int64, error) {
	const op = "storage.ExpireLapsedSubscriptions"

	query := `UPDATE users
			  SET subscription_status = $1
			  WHERE subscription_status IN ($2, $3)
			    AND subscription_end_date < now()`
	res, err := s.DB.ExecContext(ctx, query,
		models.SubscriptionExpired, models.SubscriptionTrial, models.SubscriptionActive)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
