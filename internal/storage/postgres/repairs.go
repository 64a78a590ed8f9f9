package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/storage"
)

const repairColumns = `id, service_name, description, price_range, estimated_time, brand_compatibility, is_active, created_at, updated_at`

// ListActiveRepairs returns publicly visible repair services, newest first.
func (s *Store) ListActiveRepairs(ctx context.Context) ([]models.RepairService, error) {
	const query = `
	SELECT ` + repairColumns + `
	FROM mobile_repairing
	WHERE is_active = TRUE
	ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repairs := make([]models.RepairService, 0)
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, rep)
	}
	return repairs, rows.Err()
}

// CreateRepair inserts a new repair service row and returns it with
// generated id and timestamps.
func (s *Store) CreateRepair(ctx context.Context, rep models.RepairService) (models.RepairService, error) {
	const query = `
	INSERT INTO mobile_repairing (service_name, description, price_range, estimated_time, brand_compatibility)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + repairColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		rep.ServiceName, rep.Description, rep.PriceRange, rep.EstimatedTime, rep.BrandCompatibility)
	return scanRepair(row)
}

// UpdateRepair applies the non-nil fields of upd to the row and refreshes
// updated_at.
func (s *Store) UpdateRepair(ctx context.Context, id string, upd models.RepairServiceUpdate) (models.RepairService, error) {
	const query = `
	UPDATE mobile_repairing
	SET service_name = COALESCE($1, service_name),
	    description = COALESCE($2, description),
	    price_range = COALESCE($3, price_range),
	    estimated_time = COALESCE($4, estimated_time),
	    brand_compatibility = COALESCE($5, brand_compatibility),
	    is_active = COALESCE($6, is_active),
	    updated_at = CURRENT_TIMESTAMP
	WHERE id = $7
	RETURNING ` + repairColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		upd.ServiceName, upd.Description, upd.PriceRange, upd.EstimatedTime,
		upd.BrandCompatibility, upd.IsActive, id)
	rep, err := scanRepair(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RepairService{}, storage.ErrNotFound
		}
		return models.RepairService{}, err
	}
	return rep, nil
}

// DeleteRepair removes the row; deleting a missing id is not an error.
func (s *Store) DeleteRepair(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM mobile_repairing WHERE id = $1;`, id)
	return err
}

func scanRepair(row pgx.Row) (models.RepairService, error) {
	var rep models.RepairService
	err := row.Scan(&rep.ID, &rep.ServiceName, &rep.Description, &rep.PriceRange,
		&rep.EstimatedTime, &rep.BrandCompatibility, &rep.IsActive, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return models.RepairService{}, err
	}
	return rep, nil
}
