// Package queries contains read operations for the CQRS architecture.
// Query handlers bypass the domain model and read directly from the database
// for efficient list and reporting endpoints.
package queries

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every production order with its lifecycle
// status and, when assigned, the employee working on it.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s x%d [%s]\n", o.ProductName, o.Quantity, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order row in the listing.
// EmployeeID and EmployeeName are empty for unassigned orders.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	ProductName  string
	Quantity     int
	Status       string
	EmployeeID   *kernel.UUID
	EmployeeName string
}
