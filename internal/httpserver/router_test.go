package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderahead/internal/domain"
	cartsvc "orderahead/internal/service/cart"
	menuitemsvc "orderahead/internal/service/menuitem"
	restaurantsvc "orderahead/internal/service/restaurant"
	usersvc "orderahead/internal/service/user"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubUserService struct {
	user        *domain.User
	token       string
	registerErr error
	loginErr    error
	lookupErr   error
}

func (s *stubUserService) Register(_ context.Context, _ usersvc.RegisterInput) (*domain.User, error) {
	return s.user, s.registerErr
}

func (s *stubUserService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubUserService) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.user, nil
}

type stubRestaurantService struct {
	restaurants []domain.Restaurant
	restaurant  *domain.Restaurant
	err         error
}

func (s *stubRestaurantService) List(_ context.Context) ([]domain.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubRestaurantService) Get(_ context.Context, _ string) (*domain.Restaurant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.restaurant, nil
}

func (s *stubRestaurantService) Create(_ context.Context, _ restaurantsvc.CreateInput) (*domain.Restaurant, error) {
	return s.restaurant, s.err
}

type stubMenuItemService struct {
	items []domain.MenuItem
	item  *domain.MenuItem
	err   error
}

func (s *stubMenuItemService) List(_ context.Context) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuItemService) ListByRestaurant(_ context.Context, _ string) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuItemService) Get(_ context.Context, _ string) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubMenuItemService) Create(_ context.Context, _ menuitemsvc.CreateInput) (*domain.MenuItem, error) {
	return s.item, s.err
}

func (s *stubMenuItemService) Update(_ context.Context, _ string, _ menuitemsvc.UpdateInput) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubMenuItemService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCartService struct {
	cart      *domain.Cart
	getErr    error
	addErr    error
	setErr    error
	deleteErr error

	lastItems []cartsvc.ItemInput
}

func (s *stubCartService) Get(_ context.Context, _, _ string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.cart, nil
}

func (s *stubCartService) CreateOrAdd(_ context.Context, _ string, items []cartsvc.ItemInput) (*domain.Cart, error) {
	s.lastItems = items
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.cart, nil
}

func (s *stubCartService) SetQuantities(_ context.Context, _ string, items []cartsvc.ItemInput) (*domain.Cart, error) {
	s.lastItems = items
	if s.setErr != nil {
		return nil, s.setErr
	}
	return s.cart, nil
}

func (s *stubCartService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.UserSvc == nil {
		deps.UserSvc = &stubUserService{}
	}
	if deps.RestaurantSvc == nil {
		deps.RestaurantSvc = &stubRestaurantService{}
	}
	if deps.MenuItemSvc == nil {
		deps.MenuItemSvc = &stubMenuItemService{}
	}
	if deps.CartSvc == nil {
		deps.CartSvc = &stubCartService{}
	}
	router, err := buildRouter(logDiscard(), nil, deps, []string{"http://localhost:3000"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "req-42" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}
}

func TestListRestaurants_EmptyIs404(t *testing.T) {
	router := testRouter(t, Deps{RestaurantSvc: &stubRestaurantService{}})

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "No Restaurants found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListRestaurants_Found(t *testing.T) {
	router := testRouter(t, Deps{RestaurantSvc: &stubRestaurantService{
		restaurants: []domain.Restaurant{{ID: "r1", Name: "Mama's Pizzeria"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/restaurants", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Mama's Pizzeria") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetMenuItem_NotFound(t *testing.T) {
	router := testRouter(t, Deps{MenuItemSvc: &stubMenuItemService{err: domain.ErrNotFound}})

	req := httptest.NewRequest(http.MethodGet, "/menu-item/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateMenuItem_RequiresAuth(t *testing.T) {
	router := testRouter(t, Deps{
		UserSvc: &stubUserService{lookupErr: usersvc.ErrInvalidToken},
	})

	req := httptest.NewRequest(http.MethodPost, "/menu-item", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
