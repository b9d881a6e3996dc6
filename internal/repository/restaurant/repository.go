package restaurant

import (
	"context"

	"orderahead/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Create(ctx context.Context, rst domain.Restaurant) (*domain.Restaurant, error)
}
