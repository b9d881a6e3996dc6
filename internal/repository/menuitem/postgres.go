package menuitem

import (
	"context"
	"errors"
	"io"
	"log"

	"orderahead/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, description, price_cents, created_at, updated_at
FROM menu_items
ORDER BY created_at DESC
`
	return r.queryItems(ctx, q)
}

func (r *postgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, description, price_cents, created_at, updated_at
FROM menu_items
WHERE restaurant_id = $1
ORDER BY name ASC
`
	return r.queryItems(ctx, q, restaurantID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, description, price_cents, created_at, updated_at
FROM menu_items
WHERE id = $1
`
	return r.scanItem(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Create(ctx context.Context, m domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (restaurant_id, name, description, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id::text, restaurant_id::text, name, description, price_cents, created_at, updated_at
`
	item, err := r.scanItem(r.pool.QueryRow(ctx, q, m.RestaurantID, m.Name, m.Description, m.PriceCents))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// restaurant_id points nowhere
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.MenuItem, error) {
	const q = `
UPDATE menu_items
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    price_cents = COALESCE($4, price_cents),
    updated_at = now()
WHERE id = $1
RETURNING id::text, restaurant_id::text, name, description, price_cents, created_at, updated_at
`
	return r.scanItem(r.pool.QueryRow(ctx, q, id, in.Name, in.Description, in.PriceCents))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("menu item repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryItems(ctx context.Context, q string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("menu item repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.PriceCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.PriceCents, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
