package queries

import (
	"context"

	"factoryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllEmployeesQueryHandler retrieves the employee roster from the
// database.
type GetAllEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllEmployeesQueryHandler creates a handler for employee roster
// queries. Requires a GORM database connection for query execution.
func NewGetAllEmployeesQueryHandler(db *gorm.DB) GetAllEmployeesQueryHandler {
	return GetAllEmployeesQueryHandler{db: db}
}

// Handle executes the query to retrieve all employees.
// Results are sorted by last name, then first name.
func (h GetAllEmployeesQueryHandler) Handle(
	ctx context.Context,
	query GetAllEmployeesQuery,
) ([]GetAllEmployeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employees := make([]GetAllEmployeesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			role,
			status
		FROM employees
		ORDER BY last_name, first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeResp GetAllEmployeesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&employeeResp.FirstName,
			&employeeResp.LastName,
			&employeeResp.Role,
			&employeeResp.Status,
		)
		if err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		employeeResp.ID = employeeID
		employees = append(employees, employeeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
