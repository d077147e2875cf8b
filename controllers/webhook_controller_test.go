package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/config"
)

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewWebhookController()

	r := gin.New()
	r.POST("/webhook/payment", ctrl.HandlePayment)
	return r
}

func TestWebhookController_HandlePayment(t *testing.T) {
	tests := []struct {
		name       string
		signature  string
		secret     string
		wantStatus int
	}{
		{
			name:       "missing signature header",
			signature:  "",
			secret:     "whsec_test",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "secret not configured",
			signature:  "t=1,v1=abc",
			secret:     "",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "acknowledged",
			signature:  "t=1,v1=abc",
			secret:     "whsec_test",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppConfig = &config.Config{PaymentWebhookSecret: tt.secret}
			router := newWebhookRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/webhook/payment",
				strings.NewReader(`{"type":"payment_intent.succeeded"}`))
			if tt.signature != "" {
				req.Header.Set("Stripe-Signature", tt.signature)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
