package menuitem

import (
	"context"
	"errors"
	"strings"

	"orderahead/internal/domain"
	menuitemrepo "orderahead/internal/repository/menuitem"
)

type Service struct {
	repo menuitemrepo.Repository
}

func New(repo menuitemrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	RestaurantID string `json:"restaurant"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"priceCents"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.MenuItem, error) {
	if strings.TrimSpace(in.RestaurantID) == "" {
		return nil, errors.New("restaurant id required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Create(ctx, domain.MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		PriceCents:   in.PriceCents,
	})
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"priceCents"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.MenuItem, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, errors.New("name must not be empty")
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Update(ctx, id, menuitemrepo.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
