// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, их подписками, оценками контента
// и списком "смотреть позже".
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrUserNotFound возвращается, когда пользователь с указанным идентификатором
// или именем отсутствует в базе данных.
var ErrUserNotFound = errors.New("user not found")

// ErrAlreadySaved возвращается при попытке повторно сохранить контент
// в список "смотреть позже".
var ErrAlreadySaved = errors.New("item already saved")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и их коллекциями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
