// Package services содержит бизнес-логику состояния подписки пользователя.
//
// Статус хранится в базе, но состояние "истекла" всегда выводится из даты
// окончания на момент чтения: чтение статуса ничего не пишет. Перевод
// просроченных записей в expired выполняет отдельный фоновый шаг
// (RunExpiryReconciler), а не side effect каждого чтения.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabrinaflix/backend/internal/lib/month"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
)

// ErrSubscriptionActive — пробный период нельзя начать, пока действует
// текущая подписка или пробный период.
var ErrSubscriptionActive = errors.New("subscription is already active")

// Время жизни кешированного статуса подписки. Короткое, потому что
// isActive зависит от текущего времени.
const statusCacheTTL = time.Minute

// UserRepository определяет методы хранилища, нужные для управления подпиской.
type UserRepository interface {
	// GetUser возвращает пользователя по UID или ErrUserNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// SetTrialSubscription переводит пользователя в пробный период.
	SetTrialSubscription(ctx context.Context, userUID string, trialStart, endDate time.Time) error
	// SetActiveSubscription переводит пользователя в статус active.
	SetActiveSubscription(ctx context.Context, userUID string, endDate time.Time) error
	// ExpireLapsedSubscriptions помечает просроченные подписки как expired.
	ExpireLapsedSubscriptions(ctx context.Context) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует машину состояний none → trial → active → expired.
// Статус expired не терминален: Upgrade снова переводит пользователя в active.
type SubscriptionService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo UserRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// StartTrial начинает пробный период для пользователя.
//
// Отклоняется с ErrSubscriptionActive, если текущий статус trial или active
// и дата окончания еще не прошла. Из статусов none и expired пробный период
// доступен. Дата окончания считается наивным прибавлением одного
// календарного месяца.
func (s *SubscriptionService) StartTrial(ctx context.Context, userUID string) (*models.SubscriptionInfo, error) {
	const op = "subscription.StartTrial"

	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if (user.SubscriptionStatus == models.SubscriptionTrial ||
		user.SubscriptionStatus == models.SubscriptionActive) &&
		user.SubscriptionEndDate != nil && user.SubscriptionEndDate.After(now) {
		return nil, ErrSubscriptionActive
	}

	endDate := month.AddOne(now)
	if err = s.repo.SetTrialSubscription(ctx, userUID, now, endDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateStatus(userUID)
	s.log.Info("trial started", slog.String("user_uid", userUID), slog.Time("end_date", endDate))

	return &models.SubscriptionInfo{
		Status:         models.SubscriptionTrial,
		EndDate:        &endDate,
		TrialStartDate: &now,
		IsActive:       true,
	}, nil
}

// Upgrade переводит пользователя в статус active из любого состояния.
//
// Дата окончания всегда сбрасывается на месяц от момента апгрейда,
// остаток прежнего срока не переносится.
func (s *SubscriptionService) Upgrade(ctx context.Context, userUID string) (*models.SubscriptionInfo, error) {
	const op = "subscription.Upgrade"

	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	endDate := month.AddOne(now)
	if err = s.repo.SetActiveSubscription(ctx, userUID, endDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateStatus(userUID)
	s.log.Info("subscription upgraded", slog.String("user_uid", userUID), slog.Time("end_date", endDate))

	return &models.SubscriptionInfo{
		Status:         models.SubscriptionActive,
		EndDate:        &endDate,
		TrialStartDate: user.TrialStartDate,
		IsActive:       true,
	}, nil
}

// GetStatus возвращает производное состояние подписки пользователя.
//
// Если сохраненная дата окончания уже прошла, статус отдается как expired
// независимо от того, успел ли фоновый шаг обновить запись.
func (s *SubscriptionService) GetStatus(ctx context.Context, userUID string) (*models.SubscriptionInfo, error) {
	const op = "subscription.GetStatus"

	cacheKey := statusCacheKey(userUID)
	var cached models.SubscriptionInfo
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read status from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := deriveStatus(user, time.Now().UTC())
	if err = s.cache.Set(cacheKey, info, statusCacheTTL); err != nil {
		s.log.Warn("failed to cache status", slog.String("key", cacheKey), sl.Err(err))
	}
	return info, nil
}

// IsEntitled сообщает, разрешен ли пользователю просмотр контента.
func (s *SubscriptionService) IsEntitled(ctx context.Context, userUID string) (bool, error) {
	info, err := s.GetStatus(ctx, userUID)
	if err != nil {
		return false, err
	}
	return info.IsActive, nil
}

// RunExpiryReconciler периодически помечает просроченные подписки как expired.
// Блокируется до отмены контекста.
func (s *SubscriptionService) RunExpiryReconciler(ctx context.Context, interval time.Duration) {
	s.runExpiry(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runExpiry(ctx)
		}
	}
}

func (s *SubscriptionService) runExpiry(ctx context.Context) {
	count, err := s.repo.ExpireLapsedSubscriptions(ctx)
	if err != nil {
		s.log.Error("failed to expire lapsed subscriptions", sl.Err(err))
		return
	}
	if count > 0 {
		s.log.Info("expired lapsed subscriptions", slog.Int64("count", count))
	}
}

func (s *SubscriptionService) invalidateStatus(userUID string) {
	cacheKey := statusCacheKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate status cache", slog.String("key", cacheKey), sl.Err(err))
	}
}

func statusCacheKey(userUID string) string {
	return "subscription:" + userUID
}

// deriveStatus вычисляет наблюдаемое состояние подписки на момент now.
func deriveStatus(user *models.User, now time.Time) *models.SubscriptionInfo {
	status := user.SubscriptionStatus
	endInFuture := user.SubscriptionEndDate != nil && user.SubscriptionEndDate.After(now)

	if (status == models.SubscriptionTrial || status == models.SubscriptionActive) && !endInFuture {
		status = models.SubscriptionExpired
	}

	return &models.SubscriptionInfo{
		Status:         status,
		EndDate:        user.SubscriptionEndDate,
		TrialStartDate: user.TrialStartDate,
		IsActive: (status == models.SubscriptionTrial || status == models.SubscriptionActive) &&
			endInFuture,
	}
}
