package queries

import (
	"context"
	"time"

	"factoryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkStatsQueryHandler aggregates closed-shift durations per employee
// directly in SQL.
type GetWorkStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkStatsQueryHandler creates a handler for work statistics queries.
// Requires a GORM database connection for query execution.
func NewGetWorkStatsQueryHandler(db *gorm.DB) GetWorkStatsQueryHandler {
	return GetWorkStatsQueryHandler{db: db}
}

// Handle executes the query to compute per-employee work totals.
// Results are sorted by last name, then first name, for consistent output.
func (h GetWorkStatsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkStatsQuery,
) ([]GetWorkStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetWorkStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.first_name,
			e.last_name,
			e.role,
			COALESCE(SUM(EXTRACT(EPOCH FROM (s.end_time - s.start_time))), 0),
			COUNT(s.id)
		FROM employees e
		LEFT JOIN shifts s ON s.employee_id = e.id AND s.end_time IS NOT NULL
		GROUP BY e.id, e.first_name, e.last_name, e.role
		ORDER BY e.last_name, e.first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statResp GetWorkStatsQueryResponse
		var id uuid.UUID
		var totalSeconds float64

		err = rows.Scan(
			&id,
			&statResp.FirstName,
			&statResp.LastName,
			&statResp.Role,
			&totalSeconds,
			&statResp.ShiftCount,
		)
		if err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		statResp.EmployeeID = employeeID
		statResp.TotalWorked = time.Duration(totalSeconds * float64(time.Second))
		stats = append(stats, statResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
