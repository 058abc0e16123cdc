package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/service"
	"github.com/moodfood/restaurant-floor/internal/state"
)

// OrderHandler implements the per-guest order building flow: adding and
// removing items, kitchen notes, serving courses, item status and sending
// the whole order to the kitchen.
type OrderHandler struct {
	Store   *state.Store
	AMQPURL string
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(store *state.Store, amqpURL string) *OrderHandler {
	if store == nil {
		panic("nil store passed to NewOrderHandler")
	}
	return &OrderHandler{Store: store, AMQPURL: amqpURL}
}

// AddItem handles POST /v1/tables/:id/guests/:guestId/items with a body of
// {"dishId": ...}. Unknown dishes 404, stop-listed dishes 409.
func (h *OrderHandler) AddItem(c echo.Context) error {
	var req struct {
		DishID string `json:"dishId"`
	}
	if err := c.Bind(&req); err != nil || req.DishID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dishId is required"})
	}
	if err := h.Store.AddItem(c.Param("id"), c.Param("guestId"), req.DishID); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// RemoveItem handles DELETE /v1/tables/:id/guests/:guestId/items/:itemId.
// Removing an item that is already gone is a no-op 204.
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	if err := h.Store.RemoveItem(c.Param("id"), c.Param("guestId"), c.Param("itemId")); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateItem handles PATCH /v1/tables/:id/guests/:guestId/items/:itemId.
// The body may carry a kitchen note, a serving course (1-3) or a new item
// status; fields are applied independently so the UI can bind each control
// to the same endpoint.
func (h *OrderHandler) UpdateItem(c echo.Context) error {
	var req struct {
		Note   *string `json:"note"`
		Course *int    `json:"course"`
		Status *string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed body"})
	}
	tableID, guestID, itemID := c.Param("id"), c.Param("guestId"), c.Param("itemId")
	if req.Note != nil {
		if err := h.Store.UpdateNote(tableID, guestID, itemID, *req.Note); err != nil {
			return storeError(c, err)
		}
	}
	if req.Course != nil {
		if *req.Course < 1 || *req.Course > 3 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "course must be 1-3"})
		}
		if err := h.Store.SetCourse(tableID, guestID, itemID, *req.Course); err != nil {
			return storeError(c, err)
		}
	}
	if req.Status != nil {
		if err := h.Store.SetItemStatus(tableID, guestID, itemID, *req.Status); err != nil {
			return storeError(c, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// SendOrder handles POST /v1/tables/:id/order/send. The aggregate is
// committed first; the kitchen ticket is then published best-effort and a
// publish failure never rolls the order back.
func (h *OrderHandler) SendOrder(c echo.Context) error {
	evt, ok := h.Store.SendOrder(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	// Ignore the publish result deliberately: the kitchen is a mock.
	_ = service.PublishOrderSent(c.Request().Context(), h.AMQPURL, evt)
	return c.JSON(http.StatusOK, echo.Map{"sentAt": evt.SentAt, "items": len(evt.Items)})
}
