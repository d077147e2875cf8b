package models

import "time"

type SaleBanner struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CouponCode      string    `json:"coupon_code"`
	DiscountPercent int       `json:"discount_percent"`
	BgColor         string    `json:"bgColor"`
	TextColor       string    `json:"textColor"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
