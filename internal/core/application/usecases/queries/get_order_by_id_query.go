package queries

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its material requirement
// lines, each resolved to the material's name and the total quantity the
// order consumes.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to retrieve one order.
// Validates that the order ID is a valid UUID.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderByIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// RequirementLineResponse represents one material requirement of an order.
// TotalQuantity is the per-unit quantity multiplied by the order quantity.
type RequirementLineResponse struct {
	MaterialID      kernel.UUID
	MaterialName    string
	PerUnitQuantity int
	TotalQuantity   int
}

// GetOrderByIDQueryResponse represents the full order detail view.
type GetOrderByIDQueryResponse struct {
	ID           kernel.UUID
	ProductName  string
	Quantity     int
	Status       string
	EmployeeID   *kernel.UUID
	EmployeeName string
	Requirements []RequirementLineResponse
}
