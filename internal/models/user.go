// Package models содержит доменную модель пользователя сервиса,
// включающую учётные данные, хэш пароля и состояние подписки.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Статусы подписки пользователя.
const (
	// SubscriptionNone — подписка не оформлялась.
	SubscriptionNone = "none"
	// SubscriptionTrial — активный пробный период.
	SubscriptionTrial = "trial"
	// SubscriptionActive — оплаченная подписка.
	SubscriptionActive = "active"
	// SubscriptionExpired — срок подписки или пробного периода истёк.
	SubscriptionExpired = "expired"
)

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	UID                 string     `json:"uid"`                           // Уникальный идентификатор пользователя
	Username            string     `json:"username"`                      // Имя пользователя (уникальное)
	Email               string     `json:"email"`                         // Электронная почта (уникальная)
	PasswordHash        string     `json:"-"`                             // Хэш пароля, наружу не отдается
	SubscriptionStatus  string     `json:"subscriptionStatus"`            // none, trial, active или expired
	TrialStartDate      *time.Time `json:"trialStartDate,omitempty"`      // Дата начала пробного периода
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate,omitempty"` // Дата окончания подписки или пробного периода
	CreatedAt           time.Time  `json:"createdAt"`                     // Дата регистрации
}

// SubscriptionInfo — производное состояние подписки, возвращаемое клиенту.
// Поле IsActive вычисляется из статуса и даты окончания на момент чтения.
type SubscriptionInfo struct {
	Status         string     `json:"subscriptionStatus"`
	EndDate        *time.Time `json:"subscriptionEndDate,omitempty"`
	TrialStartDate *time.Time `json:"trialStartDate,omitempty"`
	IsActive       bool       `json:"isActive"`
}
