// Package services содержит логику бизнес-уровня для работы с пользователями и сессиями.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sabrinaflix/backend/internal/lib/jwt"
	"github.com/sabrinaflix/backend/internal/lib/password"
	"github.com/sabrinaflix/backend/internal/models"
	"github.com/sabrinaflix/backend/internal/storage/repository"
)

// Ошибки уровня бизнес-логики аутентификации.
var (
	// ErrEmailTaken — адрес электронной почты уже зарегистрирован.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials — пользователь не найден или пароль не совпал.
	// Ответ одинаков для обоих случаев, чтобы не раскрывать, что именно неверно.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error

	// UsernameExists проверяет занятость имени пользователя.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists проверяет занятость адреса почты.
	EmailExists(ctx context.Context, email string) (bool, error)

	// GetUserByUsername возвращает пользователя по имени или ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUser возвращает пользователя по UID или ErrUserNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку сессионных токенов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя и выдает сессионный токен.
//
// Проверки занятости почты и имени выполняются двумя последовательными
// запросами, как и в исходном сервисе: одновременные регистрации с одинаковыми
// данными могут пройти обе проверки до коммита любой из них. Дубликат в этом
// случае отбрасывается уникальными индексами таблицы users.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Register"

	emailTaken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if emailTaken {
		return nil, "", ErrEmailTaken
	}

	usernameTaken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if usernameTaken {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		UID:                uuid.NewString(),
		Username:           username,
		Email:              email,
		PasswordHash:       hashed,
		SubscriptionStatus: models.SubscriptionNone,
	}
	if err = s.users.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и выдает сессионный токен.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.User, string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// ValidateToken проверяет сессионный токен и возвращает UID пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", err
	}
	return claims.UserUID, nil
}

// GetUser возвращает пользователя по UID. Хэш пароля в JSON не сериализуется.
func (s *AuthService) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	return s.users.GetUser(ctx, userUID)
}
