package routes

import (
	"storefront/configs"
	"storefront/controllers"
	"storefront/middlewares"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.UploadDir)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(catalogSvc, orderSvc, cfg.UploadDir)

	// Public storefront
	r.GET("/products", catalogCtrl.ListProducts)
	r.GET("/products/:id", catalogCtrl.ProductDetail)
	r.GET("/categories", catalogCtrl.ListCategories)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/me/profile-pic", authCtrl.UploadProfilePic)
	}

	// Cart + checkout (logged in)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.GET("/cart/count", cartCtrl.Count)
		u.POST("/cart/items", cartCtrl.Add)
		u.POST("/cart/items/:id/adjust", cartCtrl.Adjust)
		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.DetailMine)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/categories", adminCtrl.Categories)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		admin.GET("/products", adminCtrl.Products)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PATCH("/products/:id", adminCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)

		admin.GET("/orders", adminCtrl.OrdersList)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}
}
