package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"
	"storefront/utils"
)

// ProductFinder is the catalog lookup the cart needs when adding an item.
type ProductFinder interface {
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

type CartController struct {
	storage  repositories.CartStorage
	products ProductFinder
}

func NewCartController(storage repositories.CartStorage, products ProductFinder) *CartController {
	return &CartController{
		storage:  storage,
		products: products,
	}
}

func (ctrl *CartController) store(c *gin.Context) *services.CartStore {
	session := utils.CartSession(c)
	return services.NewCartStore(c.Request.Context(), ctrl.storage, utils.CartKey(session))
}

func cartPayload(store *services.CartStore) gin.H {
	items := store.Items()
	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
	}
	return gin.H{
		"items":       items,
		"total_price": store.TotalPrice(),
		"total_items": totalItems,
	}
}

// @Summary Get cart
// @Description Get the current cart for this session
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store := ctrl.store(c)
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(store)})
}

// @Summary Add item to cart
// @Description Add one unit of a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.products.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil || !product.IsActive {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	price := product.Price
	snapshot := models.ProductSnapshot{
		ID:       strconv.Itoa(product.ID),
		Name:     product.Name,
		Price:    &price,
		ImageURL: product.ImageURL,
	}

	store := ctrl.store(c)
	store.AddItem(c.Request.Context(), snapshot)

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(store)})
}

// @Summary Remove item from cart
// @Description Remove one unit of a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store := ctrl.store(c)
	store.RemoveItem(c.Request.Context(), c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartPayload(store)})
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store := ctrl.store(c)
	store.ClearCart(c.Request.Context())

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(store)})
}
