package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/config"
)

func TestCartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		cookie string
		want   string // empty means a fresh ID is expected
	}{
		{name: "header wins", header: "sess-h", cookie: "sess-c", want: "sess-h"},
		{name: "cookie fallback", cookie: "sess-c", want: "sess-c"},
		{name: "fresh session issued", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.header != "" {
				c.Request.Header.Set(CartSessionHeader, tt.header)
			}
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: tt.cookie})
			}

			got := CartSession(c)

			if tt.want != "" && got != tt.want {
				t.Errorf("CartSession() = %s, want %s", got, tt.want)
			}
			if tt.want == "" && got == "" {
				t.Error("CartSession() should issue a fresh session ID")
			}
			if echoed := w.Header().Get(CartSessionHeader); echoed != got {
				t.Errorf("response header = %s, want %s", echoed, got)
			}
		})
	}
}

func TestCartSessionCookieSecureFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()

	tests := []struct {
		name   string
		env    string
		secure bool
	}{
		{name: "development", env: "development", secure: false},
		{name: "production", env: "production", secure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppConfig = &config.Config{AppEnv: tt.env}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)

			CartSession(c)

			cookie := w.Header().Get("Set-Cookie")
			if cookie == "" {
				t.Fatal("expected a Set-Cookie header for the fresh session")
			}
			if got := strings.Contains(cookie, "Secure"); got != tt.secure {
				t.Errorf("Set-Cookie = %q, secure = %v, want %v", cookie, got, tt.secure)
			}
		})
	}
}

func TestCartKey(t *testing.T) {
	if got := CartKey("abc"); got != "cart:abc" {
		t.Errorf("CartKey(abc) = %s, want cart:abc", got)
	}
}
