package http

// Request and response shapes for the REST API.

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by resource-creating endpoints.
type Created struct {
	ID string `json:"id"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	ProductName  string           `json:"product_name"`
	Quantity     int              `json:"quantity"`
	Requirements []NewRequirement `json:"requirements"`
}

// NewRequirement is one material line of a new order.
type NewRequirement struct {
	MaterialID      string `json:"material_id"`
	PerUnitQuantity int    `json:"per_unit_quantity"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Status       string  `json:"status"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
}

// RequirementLine is one resolved material requirement of an order.
type RequirementLine struct {
	MaterialID      string `json:"material_id"`
	MaterialName    string `json:"material_name"`
	PerUnitQuantity int    `json:"per_unit_quantity"`
	TotalQuantity   int    `json:"total_quantity"`
}

// OrderDetail is the full order view including requirement lines.
type OrderDetail struct {
	ID           string            `json:"id"`
	ProductName  string            `json:"product_name"`
	Quantity     int               `json:"quantity"`
	Status       string            `json:"status"`
	EmployeeID   *string           `json:"employee_id,omitempty"`
	EmployeeName string            `json:"employee_name,omitempty"`
	Requirements []RequirementLine `json:"requirements"`
}

// NewMaterial is the request body for registering a material.
type NewMaterial struct {
	Name      string `json:"name"`
	Warehouse string `json:"warehouse"`
	Location  string `json:"location"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"`
}

// Material is one row of the material catalog.
type Material struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Warehouse string `json:"warehouse"`
	Location  string `json:"location"`
	Unit      string `json:"unit"`
	Quantity  int    `json:"quantity"`
}

// StockAdjustment is the request body for adjusting stock. Positive delta
// replenishes, negative delta writes off.
type StockAdjustment struct {
	Delta int `json:"delta"`
}

// NewEmployee is the request body for registering an employee.
type NewEmployee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// Employee is one row of the employee roster.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// WorkStats is one employee's accumulated work time.
type WorkStats struct {
	EmployeeID       string  `json:"employee_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Role             string  `json:"role"`
	TotalWorkedHours float64 `json:"total_worked_hours"`
	ShiftCount       int     `json:"shift_count"`
}
