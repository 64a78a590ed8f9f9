package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/storage"
)

const serviceColumns = `id, name, description, detailed_description, icon, category, is_active, created_at, updated_at`

// ListActiveServices returns publicly visible services, newest first.
func (s *Store) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	const query = `
	SELECT ` + serviceColumns + `
	FROM csc_services
	WHERE is_active = TRUE
	ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// CreateService inserts a new service row and returns it with generated
// id and timestamps.
func (s *Store) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	const query = `
	INSERT INTO csc_services (name, description, detailed_description, icon, category)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + serviceColumns + `;
	`
	row := s.pool.QueryRow(ctx, query, svc.Name, svc.Description, svc.DetailedDescription, svc.Icon, svc.Category)
	return scanService(row)
}

// UpdateService applies the non-nil fields of upd to the row and refreshes
// updated_at. COALESCE keeps stored values where the caller passed nil.
func (s *Store) UpdateService(ctx context.Context, id string, upd models.ServiceUpdate) (models.Service, error) {
	const query = `
	UPDATE csc_services
	SET name = COALESCE($1, name),
	    description = COALESCE($2, description),
	    detailed_description = COALESCE($3, detailed_description),
	    icon = COALESCE($4, icon),
	    category = COALESCE($5, category),
	    is_active = COALESCE($6, is_active),
	    updated_at = CURRENT_TIMESTAMP
	WHERE id = $7
	RETURNING ` + serviceColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		upd.Name, upd.Description, upd.DetailedDescription, upd.Icon, upd.Category, upd.IsActive, id)
	svc, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Service{}, storage.ErrNotFound
		}
		return models.Service{}, err
	}
	return svc, nil
}

// DeleteService removes the row. Deleting an id that no longer exists is
// not an error.
func (s *Store) DeleteService(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM csc_services WHERE id = $1;`, id)
	return err
}

func scanService(row pgx.Row) (models.Service, error) {
	var svc models.Service
	err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.DetailedDescription,
		&svc.Icon, &svc.Category, &svc.IsActive, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}
