package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"
	"storefront/utils"
)

type CheckoutController struct {
	storage   repositories.CartStorage
	orderRepo *repositories.OrderRepository
	email     *services.EmailService
}

// NewCheckoutController wires the checkout flow. email may be nil when SMTP
// is not configured; confirmation emails are then skipped.
func NewCheckoutController(storage repositories.CartStorage, email *services.EmailService) *CheckoutController {
	return &CheckoutController{
		storage:   storage,
		orderRepo: repositories.NewOrderRepository(),
		email:     email,
	}
}

// @Summary Checkout
// @Description Create a pending order from the current cart and clear it
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param request body models.CheckoutRequest true "Checkout details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	session := utils.CartSession(c)
	store := services.NewCartStore(c.Request.Context(), ctrl.storage, utils.CartKey(session))

	items := store.Items()
	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	order := &models.Order{
		OrderNumber: uuid.New().String(),
		Email:       req.Email,
		FullName:    req.FullName,
		Address:     req.Address,
		Status:      "pending",
		TotalAmount: store.TotalPrice(),
	}
	for _, item := range items {
		var price float64
		if item.Product.Price != nil {
			price = *item.Product.Price
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Price:       price,
			Quantity:    item.Quantity,
		})
	}

	if err := ctrl.orderRepo.CreateOrder(c.Request.Context(), order); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	store.ClearCart(c.Request.Context())

	if ctrl.email != nil {
		go func(o models.Order) {
			if err := ctrl.email.SendOrderConfirmation(&o); err != nil {
				log.Printf("order %s: failed to send confirmation email: %v", o.OrderNumber, err)
			}
		}(*order)
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created", "data": order})
}

// @Summary Get all orders
// @Description Get paginated list of orders (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *CheckoutController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := ctrl.orderRepo.GetAllOrders(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true, "message": "Orders retrieved", "data": orders,
		"meta": gin.H{"page": page, "limit": limit, "total_items": total},
	})
}
