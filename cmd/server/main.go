package main

import (
	"log" // log package is needed for logging

	"milkstore/internal/api"        // Custom package for API handlers
	"milkstore/internal/config"     // Custom package for configuration
	"milkstore/internal/domain"     // Custom package for domain models
	"milkstore/internal/middleware" // Custom package for middleware
	"milkstore/internal/service"    // Custom package for workflows
	"milkstore/internal/upload"     // Custom package for image upload

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup the image upload service
	uploader, err := upload.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logrus.Fatalf("failed to setup image upload: %v", err)
	}

	// Setup the workflows
	orders := service.NewOrderService(db)
	deliveries := service.NewDeliveryService(db)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret) // Bearer-token middleware

	// Auth routes
	authGroup := r.Group("/api/auth")
	authGroup.POST("/login", api.LoginHandler(db, cfg.JWTSecret))
	authGroup.POST("/register", api.RegisterHandler(db))

	// Product routes: public reads, Admin-only mutations
	productGroup := r.Group("/api/product")
	productGroup.GET("", api.GetProductsHandler(db))
	productGroup.GET("/:id", api.GetProductHandler(db))
	productGroup.POST("", auth, middleware.RequireRoles(domain.Admin), api.CreateProductHandler(db))
	productGroup.PUT("/:id", auth, middleware.RequireRoles(domain.Admin), api.UpdateProductHandler(db))
	productGroup.DELETE("/:id", auth, middleware.RequireRoles(domain.Admin), api.DeleteProductHandler(db))

	// Order routes (protected by JWT, role-gated per endpoint)
	orderGroup := r.Group("/api/orders")
	orderGroup.Use(auth)
	orderGroup.GET("", middleware.RequireRoles(domain.ShopStaff, domain.Customer), api.GetOrdersHandler(orders))
	orderGroup.GET("/:id", middleware.RequireRoles(domain.ShopStaff, domain.Customer), api.GetOrderHandler(orders))
	orderGroup.GET("/user/:id", middleware.RequireRoles(domain.ShopStaff, domain.Customer), api.GetOrdersByUserHandler(orders))
	orderGroup.POST("", middleware.RequireRoles(domain.ShopStaff, domain.Customer), api.CreateOrderHandler(orders))
	orderGroup.PUT("/:id", middleware.RequireRoles(domain.ShopStaff, domain.Customer, domain.DeliveryStaff), api.UpdateOrderHandler(orders))
	orderGroup.DELETE("/:id", middleware.RequireRoles(domain.ShopStaff, domain.Customer), api.CancelOrderHandler(orders))

	// Delivery routes (protected by JWT, role-gated per endpoint)
	deliveryGroup := r.Group("/api/delivery")
	deliveryGroup.Use(auth)
	deliveryGroup.POST("", middleware.RequireRoles(domain.ShopStaff), api.CreateDeliveryHandler(deliveries))
	deliveryGroup.GET("", middleware.RequireRoles(domain.ShopStaff, domain.DeliveryStaff), api.GetDeliveriesHandler(deliveries))
	deliveryGroup.GET("/:id", middleware.RequireRoles(domain.ShopStaff, domain.DeliveryStaff), api.GetDeliveryHandler(deliveries))
	deliveryGroup.GET("/user/:id", middleware.RequireRoles(domain.ShopStaff, domain.DeliveryStaff), api.GetDeliveriesByStaffHandler(deliveries))
	deliveryGroup.POST("/complete/:id", middleware.RequireRoles(domain.DeliveryStaff), api.CompleteDeliveryHandler(deliveries))

	// Store profile routes
	storeGroup := r.Group("/api/store")
	storeGroup.GET("", api.GetStoreHandler(db))
	storeGroup.POST("", api.CreateStoreHandler(db))
	storeGroup.PUT("/:id", api.UpdateStoreHandler(db))

	// Brand routes
	brandGroup := r.Group("/api/brand")
	brandGroup.GET("", api.GetBrandsHandler(db))
	brandGroup.GET("/:id", api.GetBrandHandler(db))
	brandGroup.PUT("/:id", api.UpdateBrandHandler(db))

	// User routes
	userGroup := r.Group("/api/user")
	userGroup.GET("", auth, middleware.RequireRoles(domain.ShopStaff, domain.Admin), api.GetUsersHandler(db))
	userGroup.GET("/:id", api.GetUserHandler(db))
	userGroup.PUT("/:id", api.UpdateUserHandler(db))
	userGroup.DELETE("/:id", api.DeleteUserHandler(db))

	// Image upload route
	r.POST("/api/images/upload", api.UploadImageHandler(uploader))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
