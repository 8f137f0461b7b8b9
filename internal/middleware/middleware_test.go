package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, 60)

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, ok := scope.FromGin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})

	t.Run("With User Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderUserID, "u42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "u42" {
			t.Errorf("scope user = %q, want u42", w.Body.String())
		}
	})

	t.Run("Missing User Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, 60)

	r := gin.New()
	r.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hammer := func(user string, n int) (ok, limited int) {
		for i := 0; i < n; i++ {
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			req.Header.Set(HeaderUserID, user)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			switch w.Code {
			case http.StatusOK:
				ok++
			case http.StatusTooManyRequests:
				limited++
			}
		}
		return ok, limited
	}

	ok, limited := hammer("u1", 20)
	if ok == 0 {
		t.Error("expected the first requests to pass")
	}
	if limited == 0 {
		t.Error("expected the burst to be exhausted within 20 instant requests")
	}

	// A different user gets a fresh bucket.
	if ok2, _ := hammer("u2", 1); ok2 != 1 {
		t.Error("a new user must not inherit another user's limiter")
	}
}
