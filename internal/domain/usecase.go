package domain

import "context"

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	SetUserCity(ctx context.Context, userID int64, city string) (*User, error)
	DeactivateOlderThan(ctx context.Context, ageLimit int) (int64, error)
	DeleteInactive(ctx context.Context) (int64, error)
	ImportUser(ctx context.Context, url string) (*User, error)
}
