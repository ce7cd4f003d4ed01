package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/RW482/vora/entities"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid":  "u1",
		"role": role,
		"sub":  "someone",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func do(handler echo.HandlerFunc, mw []echo.MiddlewareFunc, authz string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := handler
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	h(c)
	return rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestJWT(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWT(testSecret)}

	t.Run("valid token passes and sets context", func(t *testing.T) {
		var gotUID, gotRole string
		h := func(c echo.Context) error {
			gotUID, _ = c.Get("uid").(string)
			gotRole, _ = c.Get("role").(string)
			return c.NoContent(http.StatusOK)
		}
		rec := do(h, mw, "Bearer "+signToken(t, entities.RoleStaff))
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, want 200", rec.Code)
		}
		if gotUID != "u1" || gotRole != entities.RoleStaff {
			t.Errorf("context uid=%q role=%q", gotUID, gotRole)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if rec := do(okHandler, mw, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if rec := do(okHandler, mw, "Bearer not-a-jwt"); rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := jwt.MapClaims{"uid": "u1", "exp": time.Now().Add(time.Hour).Unix()}
		s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		if rec := do(okHandler, mw, "Bearer "+s); rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})
}

func TestRoleGuards(t *testing.T) {
	cases := []struct {
		name string
		mw   echo.MiddlewareFunc
		role string
		want int
	}{
		{"admin passes admin gate", AdminOnly(), entities.RoleAdmin, http.StatusOK},
		{"staff blocked by admin gate", AdminOnly(), entities.RoleStaff, http.StatusForbidden},
		{"driver blocked by admin gate", AdminOnly(), entities.RoleDriver, http.StatusForbidden},
		{"admin passes staff gate", StaffOrAdmin(), entities.RoleAdmin, http.StatusOK},
		{"staff passes staff gate", StaffOrAdmin(), entities.RoleStaff, http.StatusOK},
		{"driver blocked by staff gate", StaffOrAdmin(), entities.RoleDriver, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mw := []echo.MiddlewareFunc{JWT(testSecret), tc.mw}
			rec := do(okHandler, mw, "Bearer "+signToken(t, tc.role))
			if rec.Code != tc.want {
				t.Errorf("code = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
