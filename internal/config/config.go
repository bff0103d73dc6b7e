package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DBHost     string `koanf:"db_host" validate:"required"`
	DBPort     string `koanf:"db_port" validate:"required,numeric"`
	DBUser     string `koanf:"db_user" validate:"required"`
	DBPassword string `koanf:"db_password"`
	DBName     string `koanf:"db_name" validate:"required"`
	ServerPort string `koanf:"server_port" validate:"required,numeric"`

	// Параметры HTTP-клиента для импорта пользователей.
	FetchRetries int           `koanf:"fetch_retries" validate:"gte=0"`
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`
}

// Default возвращает конфигурацию для локального окружения.
func Default() Config {
	return Config{
		DBHost:       "localhost",
		DBPort:       "5432",
		DBUser:       "postgres",
		DBPassword:   "password",
		DBName:       "user_service",
		ServerPort:   "8080",
		FetchRetries: 2,
		FetchTimeout: 2 * time.Second,
	}
}

// LoadConfig читает .env (если есть) и переменные окружения поверх значений по умолчанию.
func LoadConfig() (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}
