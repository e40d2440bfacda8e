package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(60) // burst 6

	allowed := 0
	for i := 0; i < 10; i++ {
		if rl.Allow("client-a") {
			allowed++
		}
	}
	if allowed != 6 {
		t.Errorf("allowed %d requests, want burst of 6", allowed)
	}

	// A different client has its own budget.
	if !rl.Allow("client-b") {
		t.Error("fresh client was throttled")
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(60)
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	var last int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("10th request status = %d, want 429", last)
	}

	// Fresh address passes.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh client status = %d, want 200", w.Code)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name string
		set  func(r *http.Request)
		want string
	}{
		{
			"x_forwarded_for_first_hop",
			func(r *http.Request) { r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8") },
			"1.2.3.4",
		},
		{
			"x_real_ip",
			func(r *http.Request) { r.Header.Set("X-Real-IP", "9.9.9.9") },
			"9.9.9.9",
		},
		{
			"remote_addr",
			func(r *http.Request) { r.RemoteAddr = "192.0.2.1:1234" },
			"192.0.2.1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.set(req)
			if got := extractIP(req); got != tt.want {
				t.Errorf("extractIP = %q, want %q", got, tt.want)
			}
		})
	}
}
