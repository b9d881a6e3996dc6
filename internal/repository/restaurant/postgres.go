package restaurant

import (
	"context"
	"errors"

	"orderahead/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Restaurant, error) {
	const q = `
SELECT id::text, name, email, created_at, updated_at
FROM restaurants
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Restaurant
	for rows.Next() {
		var rst domain.Restaurant
		if err := rows.Scan(&rst.ID, &rst.Name, &rst.Email, &rst.CreatedAt, &rst.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rst)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const q = `
SELECT id::text, name, email, created_at, updated_at
FROM restaurants
WHERE id = $1
`
	var rst domain.Restaurant
	err := r.pool.QueryRow(ctx, q, id).Scan(&rst.ID, &rst.Name, &rst.Email, &rst.CreatedAt, &rst.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rst, nil
}

func (r *postgresRepo) Create(ctx context.Context, rst domain.Restaurant) (*domain.Restaurant, error) {
	const q = `
INSERT INTO restaurants (name, email)
VALUES ($1, $2)
RETURNING id::text, name, email, created_at, updated_at
`
	var out domain.Restaurant
	err := r.pool.QueryRow(ctx, q, rst.Name, rst.Email).Scan(&out.ID, &out.Name, &out.Email, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
