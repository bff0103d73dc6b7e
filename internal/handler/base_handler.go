package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// BaseHandler содержит общие для всех обработчиков зависимости.
type BaseHandler struct {
	logger *logrus.Logger
}

// NewBaseHandler создает новый экземпляр BaseHandler.
func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// logRequest возвращает запись лога с полями текущего запроса.
func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
	})
}
