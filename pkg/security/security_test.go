package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"math_practice_backend/pkg/security"

	"github.com/gin-gonic/gin"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	req.RemoteAddr = "192.0.2.10:1234"
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	rl := security.NewRateLimiter(2, time.Hour)
	defer rl.Stop()
	r := newRouter(rl.Middleware())

	for i := 0; i < 2; i++ {
		if w := hit(r, http.MethodGet, ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
	if w := hit(r, http.MethodGet, ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", w.Code)
	}

	// 更新参数后计数重置
	rl.Update(3, time.Hour)
	for i := 0; i < 3; i++ {
		if w := hit(r, http.MethodGet, ""); w.Code != http.StatusOK {
			t.Fatalf("after update, request %d: status %d", i, w.Code)
		}
	}
	if w := hit(r, http.MethodGet, ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("after update, fourth request: status %d, want 429", w.Code)
	}
}

func TestCORS(t *testing.T) {
	r := newRouter(security.CORS([]string{"http://localhost:3000"}))

	w := hit(r, http.MethodGet, "http://localhost:3000")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allowed origin not echoed, got %q", got)
	}

	w = hit(r, http.MethodGet, "http://evil.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin must not be allowed, got %q", got)
	}

	w = hit(r, http.MethodOptions, "http://localhost:3000")
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status %d, want 204", w.Code)
	}
}

func TestSecureHeaders(t *testing.T) {
	w := hit(newRouter(security.Secure()), http.MethodGet, "")
	if w.Header().Get("X-Frame-Options") != "DENY" || w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("missing secure headers: %v", w.Header())
	}
}
