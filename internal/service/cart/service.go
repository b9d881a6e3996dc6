package cart

import (
	"context"
	"fmt"
	"strings"

	"orderahead/internal/domain"
	cartrepo "orderahead/internal/repository/cart"
)

// ValidationError marks a request rejected before it reached the store.
// Handlers map it to a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type Service struct {
	repo cartRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	GetByID(ctx context.Context, cartID string) (*domain.Cart, error)
	Apply(ctx context.Context, userID string, fn cartrepo.Transform) (*domain.Cart, error)
	ApplyUpsert(ctx context.Context, userID string, fn cartrepo.Transform) (*domain.Cart, error)
	DeleteByUser(ctx context.Context, userID string) error
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ItemInput is one requested (menu item, quantity) pair. Quantities are
// validated here even though the transport layer checks payload shape.
type ItemInput struct {
	MenuItemID string `json:"menuItem"`
	Quantity   int    `json:"quantity"`
}

// Get resolves the cart by id when cartID is non-empty, else by its owner.
func (s *Service) Get(ctx context.Context, userID, cartID string) (*domain.Cart, error) {
	if strings.TrimSpace(cartID) != "" {
		return s.repo.GetByID(ctx, cartID)
	}
	return s.repo.GetByUser(ctx, userID)
}

// CreateOrAdd merges the requested items into the user's cart, creating the
// cart when none exists. An empty request leaves an existing cart empty of
// everything it held (the request is authoritative) or creates an empty one.
func (s *Service) CreateOrAdd(ctx context.Context, userID string, items []ItemInput) (*domain.Cart, error) {
	requested, err := toDomainItems(items, rejectNegative)
	if err != nil {
		return nil, err
	}
	return s.repo.ApplyUpsert(ctx, userID, func(current []domain.CartItem) []domain.CartItem {
		return mergeItems(current, requested)
	})
}

// SetQuantities applies explicit per-item quantity updates to an existing
// cart; quantity 0 removes the item. It never creates a cart and ignores
// menu items the cart does not hold.
func (s *Service) SetQuantities(ctx context.Context, userID string, items []ItemInput) (*domain.Cart, error) {
	if len(items) == 0 {
		return nil, validationErrorf("items required")
	}
	requested, err := toDomainItems(items, clampNegative)
	if err != nil {
		return nil, err
	}
	return s.repo.Apply(ctx, userID, func(current []domain.CartItem) []domain.CartItem {
		return setQuantities(current, requested)
	})
}

// Delete removes the user's cart. Deleting an absent cart is ErrNotFound,
// not a silent success.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.repo.DeleteByUser(ctx, userID)
}

type negativePolicy int

const (
	// rejectNegative refuses the request outright (create-or-add).
	rejectNegative negativePolicy = iota
	// clampNegative treats negative quantities as 0 (set-quantities,
	// where 0 means removal).
	clampNegative
)

func toDomainItems(items []ItemInput, policy negativePolicy) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.MenuItemID) == "" {
			return nil, validationErrorf("menuItem id required")
		}
		qty := it.Quantity
		if qty < 0 {
			if policy == rejectNegative {
				return nil, validationErrorf("quantity must not be negative")
			}
			qty = 0
		}
		out = append(out, domain.CartItem{MenuItemID: it.MenuItemID, Quantity: qty})
	}
	return out, nil
}
