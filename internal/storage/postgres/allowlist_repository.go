package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// AllowlistRepository stores the admin allowlist. Emails are normalized by
// the caller before they reach this layer.
type AllowlistRepository struct {
	pool *pgxpool.Pool
}

func NewAllowlistRepository(pool *pgxpool.Pool) *AllowlistRepository {
	return &AllowlistRepository{pool: pool}
}

func (r *AllowlistRepository) AddAdmin(ctx context.Context, email string) error {
	const stmt = `INSERT INTO admin_allowlist (email) VALUES ($1)`

	_, err := r.pool.Exec(ctx, stmt, email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAdminAlreadyExists
		}
		return storeErr("add admin", err)
	}
	return nil
}

func (r *AllowlistRepository) RemoveAdmin(ctx context.Context, email string) error {
	const stmt = `DELETE FROM admin_allowlist WHERE email = $1`

	tag, err := r.pool.Exec(ctx, stmt, email)
	if err != nil {
		return storeErr("remove admin", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AllowlistRepository) ListAdmins(ctx context.Context) ([]string, error) {
	const query = `SELECT email FROM admin_allowlist ORDER BY email ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list admins", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, storeErr("scan admin", err)
		}
		emails = append(emails, email)
	}
	if rows.Err() != nil {
		return nil, storeErr("iterate admins", rows.Err())
	}
	return emails, nil
}

// IsAdmin is consulted by the authorization gate on every privileged
// request. There is deliberately no caching in front of it.
func (r *AllowlistRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM admin_allowlist WHERE email = $1)`

	var present bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&present); err != nil {
		return false, storeErr("check admin", err)
	}
	return present, nil
}
