package menuitem

import (
	"context"

	"orderahead/internal/domain"
)

// UpdateInput carries the partial-update fields; nil pointers leave the
// stored value unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	PriceCents  *int64
}

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, m domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
