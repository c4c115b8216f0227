// Package jwt реализует генерацию и парсинг сессионных JWT токенов.
//
// Токен связывает запрос с идентификатором пользователя и действует
// фиксированный срок с момента выдачи. Списка отзыва нет: выданный
// токен остаётся валидным до истечения срока даже после logout.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken создает подписанный токен для пользователя с указанным UID.
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims токена.
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
