package handler

import (
	"net/http"

	"user-service/api"
	"user-service/internal/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*UserHandler
}

func NewAPIHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) api.ServerInterface {
	return &APIHandler{
		UserHandler: NewUserHandler(userUseCase, logger),
	}
}

// NewServer собирает echo с middleware, health-check и маршрутами API.
func NewServer(userUseCase domain.UserUseCase, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(LoggingMiddleware(logger))

	api.RegisterHandlers(e, NewAPIHandler(userUseCase, logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
