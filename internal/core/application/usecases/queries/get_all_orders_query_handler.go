package queries

import (
	"context"
	"database/sql"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database, joining
// the assigned employee's name where present.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.product_name,
			o.quantity,
			o.status,
			o.employee_id,
			e.first_name,
			e.last_name
		FROM orders o
		LEFT JOIN employees e ON e.id = o.employee_id
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var status int
		var employeeID uuid.NullUUID
		var firstName, lastName sql.NullString

		err = rows.Scan(
			&id,
			&orderResp.ProductName,
			&orderResp.Quantity,
			&status,
			&employeeID,
			&firstName,
			&lastName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()

		if employeeID.Valid {
			empID, empErr := kernel.UUIDFromBytes(employeeID.UUID[:])
			if empErr != nil {
				return nil, empErr
			}
			orderResp.EmployeeID = &empID
			orderResp.EmployeeName = firstName.String + " " + lastName.String
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
