package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/model"
	"github.com/moodfood/restaurant-floor/internal/state"
)

// PaymentHandler drives the bill lifecycle: make the bill, settle it, pick
// the split mode and preview the split. All transitions are deterministic
// local state; there is no payment processor behind this.
type PaymentHandler struct {
	Store *state.Store
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(store *state.Store) *PaymentHandler {
	if store == nil {
		panic("nil store passed to NewPaymentHandler")
	}
	return &PaymentHandler{Store: store}
}

// MakeBill handles POST /v1/tables/:id/bill. A zero-total table conflicts.
func (h *PaymentHandler) MakeBill(c echo.Context) error {
	if err := h.Store.MakeBill(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": model.PaymentStatusAwaiting})
}

// MarkPaid handles POST /v1/tables/:id/bill/paid. Only an awaiting bill
// can be settled.
func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	if err := h.Store.MarkPaid(c.Param("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": model.PaymentStatusPaid})
}

// SetSplitMode handles PUT /v1/tables/:id/bill/split with a body of
// {"mode": "byGuests"|"evenly"}.
func (h *PaymentHandler) SetSplitMode(c echo.Context) error {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.Bind(&req); err != nil || (req.Mode != model.SplitByGuests && req.Mode != model.SplitEvenly) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "mode must be byGuests or evenly"})
	}
	if err := h.Store.SetSplitMode(c.Param("id"), req.Mode); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSplit handles GET /v1/tables/:id/bill/split: the bill divided under
// the current split mode.
func (h *PaymentHandler) GetSplit(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ComputeSplit(c.Param("id")))
}
