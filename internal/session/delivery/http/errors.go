package http

import (
	"errors"
	"net/http"

	"kwikr-directory/internal/session"
	pkgErrors "kwikr-directory/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrEmptyToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "token is required")
	case errors.Is(err, session.ErrNoSession):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "No session token provided")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
