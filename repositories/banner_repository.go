package repositories

import (
	"context"
	"time"

	"storefront/config"
	"storefront/models"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) GetActiveBanners(ctx context.Context) ([]models.SaleBanner, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, title, description, coupon_code, discount_percent, bg_color, text_color, is_active, created_at
		 FROM sale_banners WHERE is_active=true ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.SaleBanner{}
	for rows.Next() {
		var b models.SaleBanner
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.CouponCode, &b.DiscountPercent,
			&b.BgColor, &b.TextColor, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *BannerRepository) CreateBanner(ctx context.Context, banner *models.SaleBanner) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO sale_banners (title, description, coupon_code, discount_percent, bg_color, text_color, is_active, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,true,$7) RETURNING id, created_at`,
		banner.Title, banner.Description, banner.CouponCode, banner.DiscountPercent,
		banner.BgColor, banner.TextColor, time.Now(),
	).Scan(&banner.ID, &banner.CreatedAt)
}

func (r *BannerRepository) DeleteBanner(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM sale_banners WHERE id=$1`, id)
	return err
}
