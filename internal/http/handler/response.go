package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "unit-service/pkg/errors"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

// respondMappedError maps internal errors to public-facing status codes
// without leaking internals.
func respondMappedError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return respondError(c, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, apperrors.ErrForbidden):
		return respondError(c, http.StatusForbidden, "access denied")
	case errors.Is(err, apperrors.ErrBadRequest):
		return respondError(c, http.StatusBadRequest, "invalid input")
	default:
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
