package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"user-service/internal/database"
	"user-service/internal/domain"
)

// UpdateCity меняет город пользователя и возвращает запись, перечитанную после commit.
// Если пользователя нет, транзакция откатывается и возвращается domain.ErrUserNotFound.
func UpdateCity(ctx context.Context, s Session, userID int64, city string) (*domain.User, error) {
	err := inTx(ctx, s, func(q *database.Queries) error {
		if _, err := q.GetUserForUpdate(ctx, userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if _, err := q.UpdateUserCity(ctx, database.UpdateUserCityParams{
			ID:   userID,
			City: city,
		}); err != nil {
			return fmt.Errorf("failed to update user city: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// refresh
	return GetUser(ctx, s, userID)
}

// DeactivateOlderThan одним запросом снимает флаг active у всех пользователей старше ageLimit.
func DeactivateOlderThan(ctx context.Context, s Session, ageLimit int) (int64, error) {
	var affected int64
	err := inTx(ctx, s, func(q *database.Queries) error {
		var err error
		affected, err = q.DeactivateUsersOlderThan(ctx, clampAge(ageLimit))
		if err != nil {
			return fmt.Errorf("failed to deactivate users: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// DeleteInactive одним запросом удаляет всех неактивных пользователей.
func DeleteInactive(ctx context.Context, s Session) (int64, error) {
	var deleted int64
	err := inTx(ctx, s, func(q *database.Queries) error {
		var err error
		deleted, err = q.DeleteInactiveUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete inactive users: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// CreateUser вставляет пользователя; ID назначает хранилище.
func CreateUser(ctx context.Context, s Session, user *domain.User) (*domain.User, error) {
	var created database.User
	err := inTx(ctx, s, func(q *database.Queries) error {
		var err error
		created, err = q.CreateUser(ctx, database.CreateUserParams{
			Name:   user.Name,
			Age:    int32(user.Age),
			City:   user.City,
			Active: user.Active,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDomainUser(created), nil
}

// GetUser возвращает пользователя по ID.
func GetUser(ctx context.Context, s Session, userID int64) (*domain.User, error) {
	dbUser, err := database.New(s).GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// ListUsers возвращает всех пользователей по возрастанию ID.
func ListUsers(ctx context.Context, s Session) ([]*domain.User, error) {
	dbUsers, err := database.New(s).ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, toDomainUser(dbUser))
	}

	return users, nil
}

// clampAge приводит порог возраста к диапазону колонки age (INTEGER).
// Значение выше MaxInt32 не совпадает ни с одной строкой, как и исходный порог.
func clampAge(age int) int32 {
	switch {
	case age > math.MaxInt32:
		return math.MaxInt32
	case age < math.MinInt32:
		return math.MinInt32
	default:
		return int32(age)
	}
}

func toDomainUser(dbUser database.User) *domain.User {
	return &domain.User{
		ID:     dbUser.ID,
		Name:   dbUser.Name,
		Age:    int(dbUser.Age),
		City:   dbUser.City,
		Active: dbUser.Active,
	}
}

// UserRepository реализует domain.UserRepository поверх сессии, принадлежащей вызывающему.
type UserRepository struct {
	session Session
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(session Session) domain.UserRepository {
	return &UserRepository{
		session: session,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return CreateUser(ctx, r.session, user)
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	return GetUser(ctx, r.session, userID)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return ListUsers(ctx, r.session)
}

func (r *UserRepository) UpdateCity(ctx context.Context, userID int64, city string) (*domain.User, error) {
	return UpdateCity(ctx, r.session, userID, city)
}

func (r *UserRepository) DeactivateOlderThan(ctx context.Context, ageLimit int) (int64, error) {
	return DeactivateOlderThan(ctx, r.session, ageLimit)
}

func (r *UserRepository) DeleteInactive(ctx context.Context) (int64, error) {
	return DeleteInactive(ctx, r.session)
}
