package queries

import (
	"context"

	"factoryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMaterialsQueryHandler retrieves the material catalog from the
// database. Stock values read here are a snapshot; reservations may change
// them immediately after.
type GetAllMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMaterialsQueryHandler creates a handler for material catalog
// queries. Requires a GORM database connection for query execution.
func NewGetAllMaterialsQueryHandler(db *gorm.DB) GetAllMaterialsQueryHandler {
	return GetAllMaterialsQueryHandler{db: db}
}

// Handle executes the query to retrieve all materials.
// Results are sorted by name for consistent output.
func (h GetAllMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMaterialsQuery,
) ([]GetAllMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]GetAllMaterialsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			warehouse,
			location,
			unit,
			quantity
		FROM materials
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var materialResp GetAllMaterialsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&materialResp.Name,
			&materialResp.Warehouse,
			&materialResp.Location,
			&materialResp.Unit,
			&materialResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		materialID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		materialResp.ID = materialID
		materials = append(materials, materialResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
