package queries

import (
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrGetAllMaterialsQueryIsNotConstructed = errors.New(
	"GetAllMaterialsQuery must be created via NewGetAllMaterialsQuery constructor",
)

// GetAllMaterialsQuery retrieves the warehouse material catalog with current
// stock levels.
type GetAllMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMaterialsQuery creates a query to retrieve all materials.
// This is a parameterless query.
func NewGetAllMaterialsQuery() GetAllMaterialsQuery {
	return GetAllMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMaterialsQueryIsNotConstructed)
}

// GetAllMaterialsQueryResponse represents one material row in the catalog.
type GetAllMaterialsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Warehouse string
	Location  string
	Unit      string
	Quantity  int
}
