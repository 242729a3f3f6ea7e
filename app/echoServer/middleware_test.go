package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	jwtutil "github.com/lucasbrentano/car-rental-project-vev-sub000/util/jwt"
)

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	h := JWTAuth("test-secret")(func(c echo.Context) error {
		uid, _ := c.Get("user_id").(int64)
		return c.JSON(http.StatusOK, echo.Map{"user_id": uid})
	})

	token, err := jwtutil.Issue("test-secret", 7, "user", 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	// missing header
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	err = h(e.NewContext(req, httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	// wrong secret
	bad, _ := jwtutil.Issue("other-secret", 7, "user", 1)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+bad)
	err = h(e.NewContext(req, httptest.NewRecorder()))
	he, ok = err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
