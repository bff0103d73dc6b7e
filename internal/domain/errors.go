package domain

import (
	"errors"
	"net/http"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUserName   = errors.New("invalid user name")
	ErrInvalidAge        = errors.New("invalid user age")
	ErrInvalidCity       = errors.New("invalid city")
	ErrInvalidAgeLimit   = errors.New("invalid age limit")
	ErrInvalidImportURL  = errors.New("invalid import url")
	ErrInvalidRemoteUser = errors.New("remote user payload is invalid")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Import errors
	ErrRemoteFetchFailed = errors.New("failed to fetch remote user")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Маппинг domain ошибок в HTTP ошибки
var errorMapping = []struct {
	err     error
	httpErr HTTPError
}{
	{ErrUserNotFound, HTTPError{Code: "NOT_FOUND", Message: "user not found", Status: http.StatusNotFound}},
	{ErrInvalidUserID, HTTPError{Code: "INVALID_REQUEST", Message: "user_id must be positive", Status: http.StatusBadRequest}},
	{ErrInvalidUserName, HTTPError{Code: "INVALID_REQUEST", Message: "name is required", Status: http.StatusBadRequest}},
	{ErrInvalidAge, HTTPError{Code: "INVALID_REQUEST", Message: "age must be between 0 and 150", Status: http.StatusBadRequest}},
	{ErrInvalidCity, HTTPError{Code: "INVALID_REQUEST", Message: "city is required", Status: http.StatusBadRequest}},
	{ErrInvalidAgeLimit, HTTPError{Code: "INVALID_REQUEST", Message: "age_limit must not be negative", Status: http.StatusBadRequest}},
	{ErrInvalidImportURL, HTTPError{Code: "INVALID_REQUEST", Message: "url must be an absolute http(s) url", Status: http.StatusBadRequest}},
	{ErrInvalidRemoteUser, HTTPError{Code: "FETCH_FAILED", Message: "remote user payload is invalid", Status: http.StatusBadGateway}},
	{ErrRemoteFetchFailed, HTTPError{Code: "FETCH_FAILED", Message: "failed to fetch remote user", Status: http.StatusBadGateway}},
}

// ToHTTPError преобразует domain ошибку (в том числе обёрнутую) в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.httpErr, true
		}
	}
	return HTTPError{}, false
}
