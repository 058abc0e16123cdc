package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/model"
	"github.com/moodfood/restaurant-floor/internal/state"
)

// TableHandler serves the floor view: the table list with derived status
// and totals, table details, seating guests, opening orders and the hard
// table reset.
type TableHandler struct {
	Store *state.Store
}

// NewTableHandler constructs a TableHandler.
func NewTableHandler(store *state.Store) *TableHandler {
	if store == nil {
		panic("nil store passed to NewTableHandler")
	}
	return &TableHandler{Store: store}
}

// ListTables handles GET /v1/tables: every table with its guest count,
// resolved status and totals.
func (h *TableHandler) ListTables(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"tables": h.Store.TableSummaries()})
}

// tableDetail is the detail view of one table, the order screen's data.
type tableDetail struct {
	Table       *model.Table       `json:"table"`
	Order       *model.Order       `json:"order,omitempty"`
	Status      string             `json:"status"`
	Totals      state.Totals       `json:"totals"`
	GuestTotals []state.GuestTotal `json:"guestTotals"`
}

// GetTable handles GET /v1/tables/:id.
func (h *TableHandler) GetTable(c echo.Context) error {
	tableID := c.Param("id")
	snap := h.Store.Snapshot()
	table := snap.TableByID(tableID)
	if table == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	return c.JSON(http.StatusOK, tableDetail{
		Table:       table,
		Order:       snap.Orders[tableID],
		Status:      h.Store.ResolveTableStatus(tableID),
		Totals:      h.Store.ComputeTotals(tableID),
		GuestTotals: h.Store.ComputeGuestTotals(tableID),
	})
}

// SeatGuest handles POST /v1/tables/:id/guests. Seating a guest lazily
// opens the table's order and the guest's empty sub-order; the response
// carries the new guest so the UI can jump to their order screen.
func (h *TableHandler) SeatGuest(c echo.Context) error {
	guest, ok := h.Store.SeatGuest(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	return c.JSON(http.StatusCreated, guest)
}

// OpenOrder handles POST /v1/tables/:id/order. Idempotent: repeated calls
// keep the original openedAt.
func (h *TableHandler) OpenOrder(c echo.Context) error {
	tableID := c.Param("id")
	if err := h.Store.EnsureOrder(tableID); err != nil {
		return storeError(c, err)
	}
	snap := h.Store.Snapshot()
	o, exists := snap.Orders[tableID]
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	return c.JSON(http.StatusOK, o)
}

// ResetTable handles POST /v1/tables/:id/reset: clears the guest list and
// deletes the order entirely.
func (h *TableHandler) ResetTable(c echo.Context) error {
	if err := h.Store.ResetTable(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
