package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/repositories"
)

type BannerController struct {
	bannerRepo *repositories.BannerRepository
}

func NewBannerController() *BannerController {
	return &BannerController{bannerRepo: repositories.NewBannerRepository()}
}

// @Summary Get sale banners
// @Description Get active promotional sale banners
// @Tags Banners
// @Produce json
// @Success 200 {object} models.Response
// @Router /banners [get]
func (ctrl *BannerController) GetActiveBanners(c *gin.Context) {
	banners, err := ctrl.bannerRepo.GetActiveBanners(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get banners"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banners retrieved", "data": banners})
}

// @Summary Create sale banner
// @Description Create promotional banner (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateBannerRequest true "Banner"
// @Success 201 {object} models.Response
// @Router /admin/banners [post]
func (ctrl *BannerController) CreateBanner(c *gin.Context) {
	var req models.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	banner := &models.SaleBanner{
		Title:           req.Title,
		Description:     req.Description,
		CouponCode:      req.CouponCode,
		DiscountPercent: req.DiscountPercent,
		BgColor:         req.BgColor,
		TextColor:       req.TextColor,
		IsActive:        true,
	}

	if err := ctrl.bannerRepo.CreateBanner(c.Request.Context(), banner); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create banner"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Banner created successfully", "data": banner})
}

// @Summary Delete sale banner
// @Description Delete promotional banner (Admin)
// @Tags Admin - Banners
// @Security BearerAuth
// @Produce json
// @Param id path int true "Banner ID"
// @Success 200 {object} models.Response
// @Router /admin/banners/{id} [delete]
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid banner ID"})
		return
	}

	if err := ctrl.bannerRepo.DeleteBanner(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete banner"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Banner deleted"})
}
