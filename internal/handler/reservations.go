package handler

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/state"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ReservationHandler manages table reservations: create with conflict
// detection, soft cancel, and listing for the floor plan.
type ReservationHandler struct {
	Store *state.Store
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(store *state.Store) *ReservationHandler {
	if store == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Store: store}
}

// Create handles POST /v1/reservations. Two active reservations may never
// share a table, date and time; the second attempt gets a 409.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req struct {
		TableID     string `json:"tableId"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		GuestsCount int    `json:"guestsCount"`
		Name        string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed body"})
	}
	if req.TableID == "" || req.Name == "" || !datePattern.MatchString(req.Date) || !timePattern.MatchString(req.Time) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tableId, name, date (YYYY-MM-DD) and time (HH:MM) are required"})
	}
	if req.GuestsCount < 1 {
		req.GuestsCount = 1
	}
	r, err := h.Store.CreateReservation(req.TableID, req.Date, req.Time, req.GuestsCount, req.Name)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// Cancel handles POST /v1/reservations/:id/cancel. Cancelled reservations
// remain in the history but stop occupying the slot.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	if err := h.Store.CancelReservation(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/reservations?date=YYYY-MM-DD.
func (h *ReservationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"reservations": h.Store.Reservations(c.QueryParam("date"))})
}
