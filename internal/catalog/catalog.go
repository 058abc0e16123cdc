// Package catalog holds the read-only reference dataset the service is
// started with: menu categories, dishes with their stop-list flags, the
// staff user and the employee/shift schedule. The core consumes the catalog
// and never mutates it. A default dataset is embedded; deployments may point
// CATALOG_PATH at a JSON file of the same shape.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/moodfood/restaurant-floor/internal/model"
)

//go:embed dataset.json
var defaultDataset []byte

// Category groups dishes on the menu.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Dish is one menu position. IsStopped marks the dish as temporarily
// unorderable (the stop-list); stop-listed dishes are still browsable.
type Dish struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Title       string   `json:"title"`
	Portion     string   `json:"portion"`
	Price       int64    `json:"price"`
	Allergens   []string `json:"allergens"`
	Ingredients []string `json:"ingredients"`
	EtaMin      int      `json:"etaMin"`
	IsStopped   bool     `json:"isStopped"`
}

// Catalog is the full reference dataset. Tables lists the physical tables
// the floor is bootstrapped with.
type Catalog struct {
	Categories     []Category             `json:"categories"`
	Dishes         []Dish                 `json:"dishes"`
	User           model.StaffUser        `json:"user"`
	Tables         []TableSeed            `json:"tables"`
	LoyaltyMembers []*model.LoyaltyMember `json:"loyaltyMembers"`
	Employees      []*model.Employee      `json:"employees"`
	Shifts         []*model.Shift         `json:"shifts"`

	dishByID     map[string]*Dish
	categoryByID map[string]*Category
	employeeByID map[string]*model.Employee
}

// TableSeed describes one table to create at bootstrap.
type TableSeed struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

// Load reads the catalog from path, or the embedded default dataset when
// path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		data = b
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	c.index()
	return &c, nil
}

func (c *Catalog) index() {
	c.dishByID = make(map[string]*Dish, len(c.Dishes))
	for i := range c.Dishes {
		c.dishByID[c.Dishes[i].ID] = &c.Dishes[i]
	}
	c.categoryByID = make(map[string]*Category, len(c.Categories))
	for i := range c.Categories {
		c.categoryByID[c.Categories[i].ID] = &c.Categories[i]
	}
	c.employeeByID = make(map[string]*model.Employee, len(c.Employees))
	for _, e := range c.Employees {
		c.employeeByID[e.ID] = e
	}
}

// DishByID returns the dish with the given id, or nil when the catalog has
// no such dish.
func (c *Catalog) DishByID(id string) *Dish { return c.dishByID[id] }

// CategoryByID returns the category with the given id, or nil.
func (c *Catalog) CategoryByID(id string) *Category { return c.categoryByID[id] }

// EmployeeByID returns the employee with the given id, or nil.
func (c *Catalog) EmployeeByID(id string) *model.Employee { return c.employeeByID[id] }

// DishesByCategory returns the dishes in the given category, in catalog
// order. Stop-listed dishes are included so the UI can render them disabled.
func (c *Catalog) DishesByCategory(categoryID string) []Dish {
	var out []Dish
	for _, d := range c.Dishes {
		if d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out
}

// ShiftsFor returns the shifts of an employee, optionally filtered by date
// (YYYY-MM-DD); an empty date returns them all.
func (c *Catalog) ShiftsFor(employeeID, date string) []*model.Shift {
	var out []*model.Shift
	for _, sh := range c.Shifts {
		if sh.EmployeeID != employeeID {
			continue
		}
		if date != "" && sh.Date != date {
			continue
		}
		out = append(out, sh)
	}
	return out
}
