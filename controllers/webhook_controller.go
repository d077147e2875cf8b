package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"storefront/config"
)

type WebhookController struct{}

func NewWebhookController() *WebhookController {
	return &WebhookController{}
}

// @Summary Payment webhook
// @Description Receive payment provider events. The event is acknowledged but
// @Description not yet verified or processed.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /webhook/payment [post]
func (ctrl *WebhookController) HandlePayment(c *gin.Context) {
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(400, gin.H{"success": false, "message": "Missing signature header"})
		return
	}

	if config.AppConfig.PaymentWebhookSecret == "" {
		c.JSON(503, gin.H{"success": false, "message": "Webhook secret not configured"})
		return
	}

	// TODO: verify the signature against the raw body and dispatch the event
	// to order fulfillment once the payment provider integration lands.
	io.Copy(io.Discard, c.Request.Body)

	c.JSON(200, gin.H{"received": true})
}
