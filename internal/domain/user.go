package domain

import "context"

// User представляет запись таблицы users.
type User struct {
	ID     int64
	Name   string
	Age    int
	City   string
	Active bool
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, userID int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateCity(ctx context.Context, userID int64, city string) (*User, error)
	DeactivateOlderThan(ctx context.Context, ageLimit int) (int64, error)
	DeleteInactive(ctx context.Context) (int64, error)
}
