package handler

import (
	"net/http"

	"user-service/api"
	"user-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// PostUsersAdd создает пользователя.
func (h *UserHandler) PostUsersAdd(c echo.Context) error {
	var req api.PostUsersAddJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind add user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "add_user").WithField("name", req.Name)
	logEntry.Info("Creating user")

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user, err := h.userUseCase.CreateUser(c.Request().Context(), &domain.User{
		Name:   req.Name,
		Age:    req.Age,
		City:   req.City,
		Active: active,
	})
	if err != nil {
		return respondError(c, logEntry, err, "Failed to create user")
	}

	logEntry.WithField("user_id", user.ID).Info("User created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersGet возвращает пользователя по ID.
func (h *UserHandler) GetUsersGet(c echo.Context, params api.GetUsersGetParams) error {
	logEntry := h.logRequest(c, "get_user").WithField("user_id", params.UserId)

	user, err := h.userUseCase.GetUser(c.Request().Context(), params.UserId)
	if err != nil {
		return respondError(c, logEntry, err, "Failed to get user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersList возвращает всех пользователей.
func (h *UserHandler) GetUsersList(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err, "Failed to list users")
	}

	logEntry.WithField("users_count", len(users)).Info("Users retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": toAPIUsers(users),
	})
}

// PostUsersSetCity меняет город пользователя.
func (h *UserHandler) PostUsersSetCity(c echo.Context) error {
	var req api.PostUsersSetCityJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind set city request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "set_user_city").WithFields(logrus.Fields{
		"user_id": req.UserId,
		"city":    req.City,
	})
	logEntry.Info("Setting user city")

	user, err := h.userUseCase.SetUserCity(c.Request().Context(), req.UserId, req.City)
	if err != nil {
		return respondError(c, logEntry, err, "Failed to set user city")
	}

	logEntry.Info("User city updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// PostUsersDeactivateOlderThan деактивирует пользователей старше age_limit.
func (h *UserHandler) PostUsersDeactivateOlderThan(c echo.Context) error {
	var req api.PostUsersDeactivateOlderThanJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind deactivate request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "deactivate_older_than").WithField("age_limit", req.AgeLimit)

	affected, err := h.userUseCase.DeactivateOlderThan(c.Request().Context(), req.AgeLimit)
	if err != nil {
		return respondError(c, logEntry, err, "Failed to deactivate users")
	}

	logEntry.WithField("affected", affected).Info("Users deactivated")
	return c.JSON(http.StatusOK, api.AffectedRows{Affected: affected})
}

// PostUsersDeleteInactive удаляет неактивных пользователей.
func (h *UserHandler) PostUsersDeleteInactive(c echo.Context) error {
	logEntry := h.logRequest(c, "delete_inactive")

	deleted, err := h.userUseCase.DeleteInactive(c.Request().Context())
	if err != nil {
		return respondError(c, logEntry, err, "Failed to delete inactive users")
	}

	logEntry.WithField("affected", deleted).Info("Inactive users deleted")
	return c.JSON(http.StatusOK, api.AffectedRows{Affected: deleted})
}

// PostUsersImport импортирует пользователя из внешнего сервиса.
func (h *UserHandler) PostUsersImport(c echo.Context) error {
	var req api.PostUsersImportJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind import request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "import_user").WithField("url", req.Url)
	logEntry.Info("Importing user")

	user, err := h.userUseCase.ImportUser(c.Request().Context(), req.Url)
	if err != nil {
		return respondError(c, logEntry, err, "Failed to import user")
	}

	logEntry.WithField("user_id", user.ID).Info("User imported successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": toAPIUser(user),
	})
}
