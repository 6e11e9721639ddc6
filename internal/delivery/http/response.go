package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"codeforge/internal/application/services"
	"codeforge/internal/domain/entities"
)

// Response represents a standard API response format
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func sendJSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		Status: "success",
		Data:   data,
		Code:   statusCode,
	})
}

func sendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

// sendServiceError maps service sentinel errors onto HTTP status codes.
func sendServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return sendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrTierRequired):
		return sendError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrRateLimited):
		return sendError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, entities.ErrUnknownTier):
		return sendError(c, http.StatusBadRequest, err.Error())
	default:
		return sendError(c, http.StatusInternalServerError, err.Error())
	}
}
