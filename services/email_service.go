package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"storefront/config"
	"storefront/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendOrderConfirmation(order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", order.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.OrderNumber))

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">%.2f</td></tr>`,
			item.ProductName, item.Quantity, item.Price*float64(item.Quantity)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Thanks for your order, %s!</h2>
        <p>Order number: <strong>%s</strong></p>
        <table style="width:100%%; border-collapse: collapse;">
            <tr><th style="text-align:left;">Item</th><th>Qty</th><th style="text-align:right;">Total</th></tr>
            %s
        </table>
        <p style="text-align:right; font-size: 18px;"><strong>Total: %.2f</strong></p>
        <p style="color: #666; font-size: 12px;">You will receive another email once payment is confirmed.</p>
    </div>
</body>
</html>`, order.FullName, order.OrderNumber, rows.String(), order.TotalAmount)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
