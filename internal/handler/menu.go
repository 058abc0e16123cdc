package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/catalog"
)

// MenuHandler serves the read-only menu: categories, dishes with their
// stop-list flags, and dish details. It reads the catalog directly; the
// aggregate is not involved.
type MenuHandler struct {
	Catalog *catalog.Catalog
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	if cat == nil {
		panic("nil catalog passed to NewMenuHandler")
	}
	return &MenuHandler{Catalog: cat}
}

// GetCategories handles GET /v1/menu/categories.
func (h *MenuHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"categories": h.Catalog.Categories})
}

// GetDishes handles GET /v1/menu/dishes?cat=<categoryId>. Without a filter
// it returns the whole menu, stop-listed dishes included so the UI can
// render them disabled.
func (h *MenuHandler) GetDishes(c echo.Context) error {
	catID := c.QueryParam("cat")
	if catID == "" {
		return c.JSON(http.StatusOK, echo.Map{"dishes": h.Catalog.Dishes})
	}
	if h.Catalog.CategoryByID(catID) == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"dishes": h.Catalog.DishesByCategory(catID)})
}

// GetDish handles GET /v1/menu/dishes/:id with portion, price, allergens,
// ingredients and availability.
func (h *MenuHandler) GetDish(c echo.Context) error {
	dish := h.Catalog.DishByID(c.Param("id"))
	if dish == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "dish not found"})
	}
	return c.JSON(http.StatusOK, dish)
}
