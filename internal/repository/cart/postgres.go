package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"orderahead/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// applyAttempts bounds the optimistic-concurrency loop. Each attempt re-reads
// the current document, so a loser always recomputes against the winner's
// state; exhaustion means pathological contention, surfaced as ErrConflict.
const applyAttempts = 5

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. Each cart is a single
// row whose items column holds the JSON document; version guards the
// conditional writes.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, user_id::text, items, created_at, updated_at
FROM carts
WHERE user_id = $1
`
	return r.scanCart(r.pool.QueryRow(ctx, q, userID))
}

func (r *postgresRepo) GetByID(ctx context.Context, cartID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, user_id::text, items, created_at, updated_at
FROM carts
WHERE id = $1
`
	return r.scanCart(r.pool.QueryRow(ctx, q, cartID))
}

func (r *postgresRepo) Apply(ctx context.Context, userID string, fn Transform) (*domain.Cart, error) {
	return r.apply(ctx, userID, fn, false)
}

func (r *postgresRepo) ApplyUpsert(ctx context.Context, userID string, fn Transform) (*domain.Cart, error) {
	return r.apply(ctx, userID, fn, true)
}

func (r *postgresRepo) apply(ctx context.Context, userID string, fn Transform, upsert bool) (*domain.Cart, error) {
	for attempt := 0; attempt < applyAttempts; attempt++ {
		current, version, err := r.readForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				if !upsert {
					return nil, domain.ErrNotFound
				}
				cart, err := r.insert(ctx, userID, fn(nil))
				if err == nil {
					return cart, nil
				}
				if errors.Is(err, domain.ErrAlreadyExists) {
					// Another writer created the cart first; redo
					// the transform against their state.
					continue
				}
				return nil, err
			}
			return nil, err
		}

		next := fn(current)
		itemsJSON, err := json.Marshal(itemsOrEmpty(next))
		if err != nil {
			return nil, err
		}

		const q = `
UPDATE carts
SET items = $1, version = version + 1, updated_at = now()
WHERE user_id = $2 AND version = $3
RETURNING id::text, user_id::text, items, created_at, updated_at
`
		cart, err := r.scanCart(r.pool.QueryRow(ctx, q, itemsJSON, userID, version))
		if err == nil {
			return cart, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			// Version moved (or the cart vanished) between read and
			// write; take another lap.
			r.logger.Printf("cart repo: apply user_id=%s attempt=%d lost race", userID, attempt+1)
			continue
		}
		return nil, err
	}
	r.logger.Printf("cart repo: apply user_id=%s retries exhausted", userID)
	return nil, domain.ErrConflict
}

func (r *postgresRepo) DeleteByUser(ctx context.Context, userID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Printf("cart repo: delete user_id=%s error=%v", userID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) readForUpdate(ctx context.Context, userID string) ([]domain.CartItem, int64, error) {
	const q = `
SELECT items, version
FROM carts
WHERE user_id = $1
`
	var itemsJSON []byte
	var version int64
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&itemsJSON, &version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, err
	}
	var items []domain.CartItem
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		r.logger.Printf("cart repo: decode items user_id=%s err=%v", userID, err)
		return nil, 0, err
	}
	return items, version, nil
}

func (r *postgresRepo) insert(ctx context.Context, userID string, items []domain.CartItem) (*domain.Cart, error) {
	itemsJSON, err := json.Marshal(itemsOrEmpty(items))
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO carts (user_id, items)
VALUES ($1, $2)
ON CONFLICT (user_id) DO NOTHING
RETURNING id::text, user_id::text, items, created_at, updated_at
`
	cart, err := r.scanCart(r.pool.QueryRow(ctx, q, userID, itemsJSON))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// DO NOTHING returned no row: someone else holds the slot.
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return cart, nil
}

func (r *postgresRepo) scanCart(row pgx.Row) (*domain.Cart, error) {
	var cart domain.Cart
	var itemsJSON []byte
	err := row.Scan(&cart.ID, &cart.UserID, &itemsJSON, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
			r.logger.Printf("cart repo: decode items cart_id=%s err=%v", cart.ID, err)
			return nil, err
		}
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

func itemsOrEmpty(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return []domain.CartItem{}
	}
	return items
}
