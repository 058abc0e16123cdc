package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/state"
)

// LoyaltyHandler covers the loyalty program flows: searching members,
// registering new ones (optionally attaching them to a seated guest in the
// same step) and linking an existing member to a guest.
type LoyaltyHandler struct {
	Store *state.Store
}

// NewLoyaltyHandler constructs a LoyaltyHandler.
func NewLoyaltyHandler(store *state.Store) *LoyaltyHandler {
	if store == nil {
		panic("nil store passed to NewLoyaltyHandler")
	}
	return &LoyaltyHandler{Store: store}
}

// Search handles GET /v1/loyalty/members?q=<phone or id or name>.
func (h *LoyaltyHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"members": h.Store.FindMembers(c.QueryParam("q"))})
}

// Get handles GET /v1/loyalty/members/:id.
func (h *LoyaltyHandler) Get(c echo.Context) error {
	m, found := h.Store.Member(c.Param("id"))
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "loyalty member not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// Register handles POST /v1/loyalty/members with the registration form.
// When tableId and guestId are present the fresh member is attached to
// that guest immediately, the way registration works from the table
// screen.
func (h *LoyaltyHandler) Register(c echo.Context) error {
	var req state.RegisterMemberInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed body"})
	}
	if req.FullName == "" || req.Phone == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fullName, phone and email are required"})
	}
	member := h.Store.RegisterMember(req)
	return c.JSON(http.StatusCreated, member)
}

// Attach handles POST /v1/tables/:id/guests/:guestId/loyalty with a body
// of {"memberId": ...}, linking the member to the guest and the table's
// order.
func (h *LoyaltyHandler) Attach(c echo.Context) error {
	var req struct {
		MemberID string `json:"memberId"`
	}
	if err := c.Bind(&req); err != nil || req.MemberID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "memberId is required"})
	}
	if err := h.Store.AttachMember(c.Param("id"), c.Param("guestId"), req.MemberID); err != nil {
		return storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
