package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/storage"
)

const accessoryColumns = `id, name, brand, description, price, image_url, category, stock_status, is_active, created_at, updated_at`

// ListActiveAccessories returns publicly visible accessories grouped by
// category, then name, the order the shop page renders them in.
func (s *Store) ListActiveAccessories(ctx context.Context) ([]models.Accessory, error) {
	const query = `
	SELECT ` + accessoryColumns + `
	FROM mobile_accessories
	WHERE is_active = TRUE
	ORDER BY category, name;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accessories := make([]models.Accessory, 0)
	for rows.Next() {
		acc, err := scanAccessory(rows)
		if err != nil {
			return nil, err
		}
		accessories = append(accessories, acc)
	}
	return accessories, rows.Err()
}

// CreateAccessory inserts a new product row and returns it with generated
// id and timestamps.
func (s *Store) CreateAccessory(ctx context.Context, acc models.Accessory) (models.Accessory, error) {
	const query = `
	INSERT INTO mobile_accessories (name, brand, description, price, image_url, category, stock_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + accessoryColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		acc.Name, acc.Brand, acc.Description, acc.Price, acc.ImageURL, acc.Category, acc.StockStatus)
	return scanAccessory(row)
}

// UpdateAccessory applies the non-nil fields of upd to the row and
// refreshes updated_at.
func (s *Store) UpdateAccessory(ctx context.Context, id string, upd models.AccessoryUpdate) (models.Accessory, error) {
	const query = `
	UPDATE mobile_accessories
	SET name = COALESCE($1, name),
	    brand = COALESCE($2, brand),
	    description = COALESCE($3, description),
	    price = COALESCE($4, price),
	    image_url = COALESCE($5, image_url),
	    category = COALESCE($6, category),
	    stock_status = COALESCE($7, stock_status),
	    is_active = COALESCE($8, is_active),
	    updated_at = CURRENT_TIMESTAMP
	WHERE id = $9
	RETURNING ` + accessoryColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		upd.Name, upd.Brand, upd.Description, upd.Price, upd.ImageURL,
		upd.Category, upd.StockStatus, upd.IsActive, id)
	acc, err := scanAccessory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Accessory{}, storage.ErrNotFound
		}
		return models.Accessory{}, err
	}
	return acc, nil
}

// DeleteAccessory removes the row; deleting a missing id is not an error.
func (s *Store) DeleteAccessory(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM mobile_accessories WHERE id = $1;`, id)
	return err
}

func scanAccessory(row pgx.Row) (models.Accessory, error) {
	var acc models.Accessory
	err := row.Scan(&acc.ID, &acc.Name, &acc.Brand, &acc.Description, &acc.Price,
		&acc.ImageURL, &acc.Category, &acc.StockStatus, &acc.IsActive, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return models.Accessory{}, err
	}
	return acc, nil
}
