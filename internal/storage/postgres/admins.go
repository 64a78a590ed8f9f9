package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skmobile/csc-center-api/internal/models"
	"github.com/skmobile/csc-center-api/internal/storage"
)

// FindAdminByUsername fetches an admin credential row. Usernames are
// case-sensitive, matching the unique index.
func (s *Store) FindAdminByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	const query = `
	SELECT id, username, password_hash, created_at, updated_at
	FROM admin_users
	WHERE username = $1;
	`
	var admin models.AdminUser
	row := s.pool.QueryRow(ctx, query, username)
	err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AdminUser{}, storage.ErrNotFound
		}
		return models.AdminUser{}, err
	}
	return admin, nil
}

// UpsertAdmin inserts the admin row, or rotates the password hash when the
// username is already taken.
func (s *Store) UpsertAdmin(ctx context.Context, username, passwordHash string) (models.AdminUser, error) {
	const query = `
	INSERT INTO admin_users (username, password_hash)
	VALUES ($1, $2)
	ON CONFLICT (username) DO UPDATE
	SET password_hash = EXCLUDED.password_hash, updated_at = CURRENT_TIMESTAMP
	RETURNING id, username, password_hash, created_at, updated_at;
	`
	var admin models.AdminUser
	row := s.pool.QueryRow(ctx, query, username, passwordHash)
	err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return models.AdminUser{}, err
	}
	return admin, nil
}
