package restaurant

import (
	"context"
	"errors"
	"strings"

	"orderahead/internal/domain"
	restaurantrepo "orderahead/internal/repository/restaurant"
)

type Service struct {
	repo restaurantrepo.Repository
}

func New(repo restaurantrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email required")
	}
	return s.repo.Create(ctx, domain.Restaurant{Name: name, Email: email})
}
