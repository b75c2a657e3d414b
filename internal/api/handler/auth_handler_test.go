package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, identifier, password string) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, sessionID string) error
	verifyFn   func(ctx context.Context, sessionID string) (*domain.PublicAccount, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Verify(ctx context.Context, sessionID string) (*domain.PublicAccount, error) {
	return s.verifyFn(ctx, sessionID)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, email, password string) (*ports.AuthResult, error) {
			if username != "alice" || email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &ports.AuthResult{
				User:      domain.PublicAccount{ID: "u1", Username: username, Email: email},
				SessionID: "tok",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(e, "/api/auth", `{"action":"register","username":"alice","email":"a@x.com","password":"pw1"}`)
	if err := h.Handle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["sessionId"] != "tok" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" || user["username"] != "alice" || user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked: %+v", user)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string, string) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := postJSON(e, "/api/auth", `{"action":"register","username":"alice","password":"pw1"}`)
	err := h.Handle(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "email is required") {
		t.Fatalf("expected field name in message, got %q", err.Error())
	}
}

func TestAuthHandler_Register_AccountExists(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrAccountExists
		},
	})

	c, _ := postJSON(e, "/api/auth", `{"action":"register","username":"alice","email":"a@x.com","password":"pw1"}`)
	if err := h.Handle(c); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthHandler_Login_PassesIdentifier(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, identifier, password string) (*ports.AuthResult, error) {
			if identifier != "alice" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return &ports.AuthResult{User: domain.PublicAccount{ID: "u1", Username: "alice"}, SessionID: "tok2"}, nil
		},
	})

	c, rec := postJSON(e, "/api/auth", `{"action":"login","email":"alice","password":"pw1"}`)
	if err := h.Handle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"sessionId":"tok2"`) {
		t.Fatalf("expected session id in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := postJSON(e, "/api/auth", `{"action":"login","email":"a@x.com","password":"wrong"}`)
	if err := h.Handle(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	var revoked string
	h := NewAuthHandler(&stubAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			revoked = sessionID
			return nil
		},
	})

	c, rec := postJSON(e, "/api/auth", `{"action":"logout","sessionId":"tok"}`)
	if err := h.Handle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != "tok" {
		t.Fatalf("expected tok revoked, got %q", revoked)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{
		verifyFn: func(_ context.Context, sessionID string) (*domain.PublicAccount, error) {
			if sessionID == "gone" {
				return nil, domain.ErrSessionExpired
			}
			return &domain.PublicAccount{ID: "u1", Username: "alice", Email: "a@x.com"}, nil
		},
	})

	c, rec := postJSON(e, "/api/auth", `{"action":"verify","sessionId":"tok"}`)
	if err := h.Handle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "sessionId") {
		t.Fatalf("verify must not echo a session id: %s", rec.Body.String())
	}

	c, _ = postJSON(e, "/api/auth", `{"action":"verify","sessionId":"gone"}`)
	if err := h.Handle(c); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestAuthHandler_SessionActionsRequireSessionID(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	for _, action := range []string{"logout", "verify"} {
		c, _ := postJSON(e, "/api/auth", `{"action":"`+action+`"}`)
		if err := h.Handle(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", action, err)
		}
	}
}

func TestAuthHandler_InvalidAction(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{`{"action":"bogus"}`, `{}`} {
		c, _ := postJSON(e, "/api/auth", body)
		if err := h.Handle(c); !errors.Is(err, domain.ErrInvalidAction) {
			t.Fatalf("body %s: expected ErrInvalidAction, got %v", body, err)
		}
	}
}

func TestAuthHandler_MalformedBody(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := postJSON(e, "/api/auth", `{"action":`)
	err := h.Handle(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
