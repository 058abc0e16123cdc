package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/state"
)

// storeError translates the state package's sentinel errors into HTTP
// responses. Not-found resolves to 404, violated preconditions and
// conflicts to 409 so the UI can show the staff a message; nothing here is
// fatal to the session.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, state.ErrTableNotFound),
		errors.Is(err, state.ErrDishNotFound),
		errors.Is(err, state.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, state.ErrDishUnavailable),
		errors.Is(err, state.ErrReservationConflict),
		errors.Is(err, state.ErrEmptyBill),
		errors.Is(err, state.ErrNotAwaiting),
		errors.Is(err, state.ErrBadStatusChange):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
