package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sustainlite/sustainlite-api/internal/api/middleware"
	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.Token, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthService) IssueToken(*domain.User) (*domain.Token, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Token, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) ResolveIdentity(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not used")
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "a@x.io" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: 1, Username: username, Email: email, PasswordHash: "$2a$secret"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","email":"a@x.io","password":"pw1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(1) || resp["username"] != "alice" || resp["email"] != "a@x.io" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "secret") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"bob","email":"b@x.io","password":"p"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"bob","email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["email"] != "email must be a valid email" {
		t.Errorf("unexpected email message: %q", verr.Fields["email"])
	}
	if verr.Fields["password"] != "password is required" {
		t.Errorf("unexpected password message: %q", verr.Fields["password"])
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var he *echo.HTTPError
	if err := handler.Register(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func loginStub() *stubAuthService {
	return &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Token, *domain.User, error) {
			if username != "alice" || password != "pw1" {
				return nil, nil, domain.ErrInvalidCredentials
			}
			return &domain.Token{
				AccessToken: "token123",
				TokenType:   "bearer",
				ExpiresAt:   time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC),
			}, &domain.User{ID: 1, Username: "alice"}, nil
		},
	}
}

func TestAuthHandler_Login_Form(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(loginStub())
	handler.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	form := url.Values{"username": {"alice"}, "password": {"pw1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "token123" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
	if resp.ExpiresIn != 1800 {
		t.Errorf("expected expires_in 1800, got %d", resp.ExpiresIn)
	}
}

func TestAuthHandler_Login_JSON(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(loginStub())

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"pw1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(loginStub())

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	if err := handler.Login(e.NewContext(req, httptest.NewRecorder())); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(loginStub())

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("username=alice"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	var verr *domain.ValidationError
	if err := handler.Login(e.NewContext(req, httptest.NewRecorder())); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), rec)
	c.Set(middleware.UserContextKey, &domain.User{ID: 4, Username: "dora", Email: "d@x.io"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp userResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != 4 || resp.Username != "dora" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Me_WithoutUser(t *testing.T) {
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), httptest.NewRecorder())

	if err := NewAuthHandler(&stubAuthService{}).Me(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
