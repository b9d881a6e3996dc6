package cart

import (
	"context"

	"orderahead/internal/domain"
)

// Transform computes the next item list of a cart from its current one. It
// must be pure: no I/O, no retained references, same output for same input,
// because Apply may invoke it more than once while racing other writers.
type Transform func(items []domain.CartItem) []domain.CartItem

// Repository is the store for per-user cart documents. Apply and
// ApplyUpsert guarantee the transform is committed against the latest
// stored state, never against a stale snapshot.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	GetByID(ctx context.Context, cartID string) (*domain.Cart, error)

	// Apply atomically rewrites the items of an existing cart. Returns
	// domain.ErrNotFound when the user has no cart, domain.ErrConflict
	// when concurrent writers starve the update past its retry limit.
	Apply(ctx context.Context, userID string, fn Transform) (*domain.Cart, error)

	// ApplyUpsert behaves like Apply but atomically creates the cart,
	// seeded with fn(nil), when the user has none yet.
	ApplyUpsert(ctx context.Context, userID string, fn Transform) (*domain.Cart, error)

	// DeleteByUser removes the cart outright. Returns domain.ErrNotFound
	// when there was nothing to delete.
	DeleteByUser(ctx context.Context, userID string) error
}
