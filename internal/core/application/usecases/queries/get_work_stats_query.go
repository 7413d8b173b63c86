package queries

import (
	"errors"
	"time"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/pkg/guard"
)

var ErrGetWorkStatsQueryIsNotConstructed = errors.New(
	"GetWorkStatsQuery must be created via NewGetWorkStatsQuery constructor",
)

// GetWorkStatsQuery aggregates the total time each employee has worked
// across closed shifts. Active shifts are excluded until they end.
type GetWorkStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkStatsQuery creates a query to compute per-employee work totals.
// This is a parameterless query.
func NewGetWorkStatsQuery() GetWorkStatsQuery {
	return GetWorkStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkStatsQueryIsNotConstructed)
}

// GetWorkStatsQueryResponse represents one employee's accumulated work time.
// Employees with no closed shifts appear with a zero total.
type GetWorkStatsQueryResponse struct {
	EmployeeID  kernel.UUID
	FirstName   string
	LastName    string
	Role        string
	TotalWorked time.Duration
	ShiftCount  int
}
