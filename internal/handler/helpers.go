package handler

import (
	"net/http"

	"user-service/api"
	"user-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	return api.User{
		UserId:   user.ID,
		Name:     user.Name,
		Age:      user.Age,
		City:     user.City,
		IsActive: user.Active,
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

func toErrorResponse(code api.ErrorResponseErrorCode, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

// respondError пишет доменную ошибку в формате ErrorResponse.
func respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	httpErr, exists := domain.ToHTTPError(err)
	if !exists {
		logEntry.WithError(err).Error(msg)
		return c.JSON(http.StatusInternalServerError, toErrorResponse(api.INTERNALERROR, err.Error()))
	}

	if httpErr.Status >= http.StatusInternalServerError {
		logEntry.WithError(err).Error(msg)
	} else {
		logEntry.WithError(err).Warn(msg)
	}
	return c.JSON(httpErr.Status, toErrorResponse(api.ErrorResponseErrorCode(httpErr.Code), httpErr.Message))
}
