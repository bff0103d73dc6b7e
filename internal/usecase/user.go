package usecase

import (
	"context"
	"fmt"

	"user-service/internal/domain"
	"user-service/internal/fetcher"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// UserFetcher загружает JSON удаленного профиля пользователя.
type UserFetcher interface {
	Fetch(ctx context.Context, url string, opts ...fetcher.Option) (any, error)
}

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
	fetcher  UserFetcher
	validate *validator.Validate
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, userFetcher UserFetcher) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		fetcher:  userFetcher,
		validate: validator.New(),
	}
}

// remoteUser — формат профиля, отдаваемого внешним сервисом.
type remoteUser struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	City   string `json:"city"`
	Active *bool  `json:"active"`
}

// CreateUser проверяет поля и сохраняет нового пользователя.
func (uc *UserUseCase) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := uc.validateUser(user); err != nil {
		return nil, err
	}

	return uc.userRepo.Create(ctx, user)
}

// GetUser возвращает пользователя по ID.
func (uc *UserUseCase) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if err := uc.validate.Var(userID, "gt=0"); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// SetUserCity меняет город пользователя.
func (uc *UserUseCase) SetUserCity(ctx context.Context, userID int64, city string) (*domain.User, error) {
	if err := uc.validate.Var(userID, "gt=0"); err != nil {
		return nil, domain.ErrInvalidUserID
	}
	if err := uc.validate.Var(city, "required,max=255"); err != nil {
		return nil, domain.ErrInvalidCity
	}

	return uc.userRepo.UpdateCity(ctx, userID, city)
}

// DeactivateOlderThan деактивирует всех пользователей старше ageLimit.
func (uc *UserUseCase) DeactivateOlderThan(ctx context.Context, ageLimit int) (int64, error) {
	if err := uc.validate.Var(ageLimit, "gte=0"); err != nil {
		return 0, domain.ErrInvalidAgeLimit
	}

	return uc.userRepo.DeactivateOlderThan(ctx, ageLimit)
}

// DeleteInactive удаляет всех неактивных пользователей.
func (uc *UserUseCase) DeleteInactive(ctx context.Context) (int64, error) {
	return uc.userRepo.DeleteInactive(ctx)
}

// ImportUser загружает профиль по url и сохраняет его как нового пользователя.
func (uc *UserUseCase) ImportUser(ctx context.Context, url string) (*domain.User, error) {
	if err := uc.validate.Var(url, "required,http_url"); err != nil {
		return nil, domain.ErrInvalidImportURL
	}

	payload, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteFetchFailed, err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRemoteUser, err)
	}

	var remote remoteUser
	if err := json.Unmarshal(raw, &remote); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRemoteUser, err)
	}

	user := &domain.User{
		Name:   remote.Name,
		Age:    remote.Age,
		City:   remote.City,
		Active: remote.Active == nil || *remote.Active,
	}
	if err := uc.validateUser(user); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRemoteUser, err)
	}

	return uc.userRepo.Create(ctx, user)
}

func (uc *UserUseCase) validateUser(user *domain.User) error {
	if err := uc.validate.Var(user.Name, "required,max=255"); err != nil {
		return domain.ErrInvalidUserName
	}
	if err := uc.validate.Var(user.Age, "gte=0,lte=150"); err != nil {
		return domain.ErrInvalidAge
	}
	if err := uc.validate.Var(user.City, "required,max=255"); err != nil {
		return domain.ErrInvalidCity
	}
	return nil
}
