package model

// Employee is reference data for shift reporting.
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Shift is one scheduled working window for an employee. Date is
// YYYY-MM-DD, Start and End are HH:MM local time. Shifts are reference
// data seeded from the catalog; the core never creates them.
type Shift struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// Schedule is the employees-and-shifts snapshot carried in the aggregate so
// shift reports derive from the same tree as everything else.
type Schedule struct {
	Employees []*Employee `json:"employees"`
	Shifts    []*Shift    `json:"shifts"`
}
