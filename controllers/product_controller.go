package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/libs"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type ProductController struct {
	productRepo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{productRepo: repositories.NewProductRepository()}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("product cache: failed to invalidate: %v", err)
	}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productRepo.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := getProductCacheKey(page, limit)
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.productRepo.GetAllProducts(ctx, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get products"})
		return
	}

	response := gin.H{
		"success": true, "message": "Products retrieved", "data": products,
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Filter products
// @Description Filter products by search, category, sort, price range, and sale flags
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Filter by category name"
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param on_sale query bool false "Only products on sale"
// @Param featured query bool false "Only featured products"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	onSale, _ := strconv.ParseBool(c.DefaultQuery("on_sale", "false"))
	featured, _ := strconv.ParseBool(c.DefaultQuery("featured", "false"))

	filter := repositories.ProductFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Category:  strings.TrimSpace(c.Query("category")),
		SortName:  strings.TrimSpace(c.Query("sort_name")),
		SortPrice: strings.TrimSpace(c.Query("sort_price")),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		OnSale:    onSale,
		Featured:  featured,
	}

	products, err := ctrl.productRepo.FilterProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to filter products"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products filtered",
		"data":    products,
		"total":   len(products),
	})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.productRepo.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Product price"
// @Param stock formData int false "Product stock"
// @Param is_on_sale formData bool false "Is on sale"
// @Param is_featured formData bool false "Is featured"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Price <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}
	if req.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock"})
		return
	}

	exists, err := ctrl.productRepo.CategoryExists(c.Request.Context(), req.CategoryID)
	if err != nil || !exists {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		localPath, err := utils.UploadFile(c, file, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		hostedURL, err := libs.UploadToCloudinary(localPath)
		if err == nil {
			imageURL = hostedURL
			utils.DeleteFile(localPath)
		} else {
			imageURL = localPath
		}
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    imageURL,
		IsOnSale:    req.IsOnSale,
		IsFeatured:  req.IsFeatured,
		IsActive:    true,
	}

	if err := ctrl.productRepo.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// @Summary Update product
// @Description Update product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.productRepo.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product.Name = strings.TrimSpace(c.DefaultPostForm("name", product.Name))
	product.Description = strings.TrimSpace(c.DefaultPostForm("description", product.Description))
	product.CategoryID, _ = strconv.Atoi(c.DefaultPostForm("category_id", strconv.Itoa(product.CategoryID)))
	product.Price, _ = strconv.ParseFloat(c.DefaultPostForm("price", strconv.FormatFloat(product.Price, 'f', -1, 64)), 64)
	product.Stock, _ = strconv.Atoi(c.DefaultPostForm("stock", strconv.Itoa(product.Stock)))
	product.IsOnSale, _ = strconv.ParseBool(c.DefaultPostForm("is_on_sale", strconv.FormatBool(product.IsOnSale)))
	product.IsFeatured, _ = strconv.ParseBool(c.DefaultPostForm("is_featured", strconv.FormatBool(product.IsFeatured)))
	product.IsActive, _ = strconv.ParseBool(c.DefaultPostForm("is_active", strconv.FormatBool(product.IsActive)))

	if len(product.Name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 3 characters"})
		return
	}
	if product.Price <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}
	if product.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock"})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		localPath, err := utils.UploadFile(c, file, "products")
		if err == nil {
			if hostedURL, err := libs.UploadToCloudinary(localPath); err == nil {
				product.ImageURL = hostedURL
				utils.DeleteFile(localPath)
			} else {
				product.ImageURL = localPath
			}
		}
	}

	if err := ctrl.productRepo.UpdateProduct(c.Request.Context(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if _, err := ctrl.productRepo.GetProductByID(c.Request.Context(), id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := ctrl.productRepo.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted permanently"})
}
