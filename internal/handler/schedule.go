package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/model"
	"github.com/moodfood/restaurant-floor/internal/state"
)

// ScheduleHandler exposes the shift schedule and the derived hours report.
// Shifts are reference data; the service never creates them.
type ScheduleHandler struct {
	Store *state.Store
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(store *state.Store) *ScheduleHandler {
	if store == nil {
		panic("nil store passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Store: store}
}

// Shifts handles GET /v1/schedule/shifts?employee=&date=. Each shift is
// returned with its derived length in hours.
func (h *ScheduleHandler) Shifts(c echo.Context) error {
	employeeID := c.QueryParam("employee")
	date := c.QueryParam("date")

	type shiftWithHours struct {
		model.Shift
		Hours float64 `json:"hours"`
	}
	snap := h.Store.Snapshot()
	out := []shiftWithHours{}
	for _, sh := range snap.Schedule.Shifts {
		if employeeID != "" && sh.EmployeeID != employeeID {
			continue
		}
		if date != "" && sh.Date != date {
			continue
		}
		out = append(out, shiftWithHours{Shift: *sh, Hours: state.ShiftHours(sh)})
	}
	return c.JSON(http.StatusOK, echo.Map{"shifts": out})
}

// Report handles GET /v1/schedule/report?date=YYYY-MM-DD: total scheduled
// hours per employee for the day.
func (h *ScheduleHandler) Report(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "report": h.Store.ShiftReport(date)})
}
