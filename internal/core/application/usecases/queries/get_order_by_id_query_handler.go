package queries

import (
	"context"
	"database/sql"
	"errors"

	"factoryops/internal/core/domain/model/kernel"
	"factoryops/internal/core/domain/model/order"
	"factoryops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order with its requirement lines.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderResp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderResp.Requirements, err = h.fetchRequirements(ctx, query.OrderID(), orderResp.Quantity)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return orderResp, nil
}

func (h GetOrderByIDQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderByIDQueryResponse, error) {
	var orderResp GetOrderByIDQueryResponse
	var id uuid.UUID
	var status int
	var employeeID uuid.NullUUID
	var firstName, lastName sql.NullString

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&orderResp.ProductName,
		&orderResp.Quantity,
		&status,
		&employeeID,
		&firstName,
		&lastName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderResp.ID = orderID
	orderResp.Status = order.Status(status).String()

	if employeeID.Valid {
		empID, empErr := kernel.UUIDFromBytes(employeeID.UUID[:])
		if empErr != nil {
			return GetOrderByIDQueryResponse{}, empErr
		}
		orderResp.EmployeeID = &empID
		orderResp.EmployeeName = firstName.String + " " + lastName.String
	}

	return orderResp, nil
}

func (h GetOrderByIDQueryHandler) fetchRequirements(
	ctx context.Context,
	orderID kernel.UUID,
	orderQuantity int,
) ([]RequirementLineResponse, error) {
	lines := make([]RequirementLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.material_id,
			m.name,
			r.per_unit_quantity
		FROM order_requirements r
		JOIN materials m ON m.id = r.material_id
		WHERE r.order_id = ?
		ORDER BY r.material_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line RequirementLineResponse
		var materialID uuid.UUID

		if err = rows.Scan(&materialID, &line.MaterialName, &line.PerUnitQuantity); err != nil {
			return nil, err
		}

		matID, idErr := kernel.UUIDFromBytes(materialID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MaterialID = matID
		line.TotalQuantity = line.PerUnitQuantity * orderQuantity
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
