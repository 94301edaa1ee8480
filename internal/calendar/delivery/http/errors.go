package http

import (
	"errors"
	"net/http"

	"kwikr-directory/internal/calendar"
	pkgErrors "kwikr-directory/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// The order matters: ErrAuthExpired wraps ErrFetchFailure.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrAuthExpired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Session expired")
	case errors.Is(err, calendar.ErrFetchFailure):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, fetchFailedNotice)
	case errors.Is(err, calendar.ErrStaleResult):
		return pkgErrors.NewHTTPError(http.StatusConflict, calendar.ErrStaleResult.Error())
	case errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidNav):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrNothingToExport):
		return pkgErrors.NewHTTPError(http.StatusNotFound, calendar.ErrNothingToExport.Error())
	case errors.Is(err, calendar.ErrInvalidAppointment),
		errors.Is(err, calendar.ErrInvalidTimeBlock),
		errors.Is(err, calendar.ErrEventRejected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, calendar.ErrSaveFailure):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, saveFailedNotice)
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// fetchFailed reports a failure the views degrade to an empty state for.
func fetchFailed(err error) bool {
	return errors.Is(err, calendar.ErrFetchFailure) && !errors.Is(err, calendar.ErrAuthExpired)
}
