package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderahead/internal/domain"
	usersvc "orderahead/internal/service/user"
)

func TestRegisterHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		user: &domain.User{ID: "u1", Name: "Test User", Email: "user@example.com"},
	}})

	body := `{"name":"Test User","email":"user@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"user@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		registerErr: domain.ErrAlreadyExists,
	}})

	body := `{"name":"Test User","email":"user@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		user:  &domain.User{ID: "u1", Name: "Test User", Email: "user@example.com"},
		token: "signed-token",
	}})

	body := `{"email":"user@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"signed-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		loginErr: usersvc.ErrInvalidCredentials,
	}})

	body := `{"email":"user@example.com","password":"badpass"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(`{"email":"user@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_UnauthorizedWithoutToken(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_InvalidToken(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		lookupErr: usersvc.ErrInvalidToken,
	}})

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_Success(t *testing.T) {
	router := testRouter(t, Deps{UserSvc: &stubUserService{
		user: &domain.User{ID: "u1", Name: "Test User", Email: "me@example.com"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"me@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
