package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/config"
	"storefront/controllers"
	"storefront/middleware"
	"storefront/repositories"
	"storefront/services"
)

func SetupRoutes(router *gin.Engine) {
	var storage repositories.CartStorage
	if config.RedisClient != nil {
		storage = repositories.NewRedisCartStorage(config.RedisClient, config.AppConfig.CartTTL)
	} else {
		log.Println("Redis not available, keeping carts in process memory")
		storage = repositories.NewMemoryCartStorage()
	}

	emailSvc, err := services.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
	}

	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	bannerCtrl := controllers.NewBannerController()
	cartCtrl := controllers.NewCartController(storage, repositories.NewProductRepository())
	checkoutCtrl := controllers.NewCheckoutController(storage, emailSvc)
	webhookCtrl := controllers.NewWebhookController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/filter", productCtrl.FilterProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/banners", bannerCtrl.GetActiveBanners)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)

	router.POST("/checkout", checkoutCtrl.Checkout)
	router.POST("/webhook/payment", webhookCtrl.HandlePayment)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/banners", bannerCtrl.CreateBanner)
		admin.DELETE("/banners/:id", bannerCtrl.DeleteBanner)

		admin.GET("/orders", checkoutCtrl.GetAllOrders)
	}

	router.Static("/uploads", "./uploads")
}
