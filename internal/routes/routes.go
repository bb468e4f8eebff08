package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/config"
	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/handlers/admin"
	"shopease_front_end/internal/handlers/seller"
	"shopease_front_end/internal/handlers/user"
	"shopease_front_end/internal/middleware"
	"shopease_front_end/internal/models"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID())

	// Le navigateur envoie le cookie de session, il faut les credentials.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Get("FRONT_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Pages publiques : catalogue, contact, session
	api.GET("/products", handlers.ListProducts)
	api.GET("/products/:id", handlers.GetProduct)
	api.POST("/contact", handlers.Contact)

	session := api.Group("/session")
	{
		session.POST("/login", middleware.LoginRateLimit(), handlers.Login)
		session.POST("/register", handlers.Register)
		session.POST("/logout", handlers.Logout)
		session.GET("/nav", handlers.Nav)
	}

	// Espace acheteur
	buyer := api.Group("/buyer")
	buyer.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleBuyer))
	{
		buyer.GET("/cart", user.GetCart)
		buyer.POST("/cart", user.AddToCart)
		buyer.DELETE("/cart/:productId", user.RemoveFromCart)
		buyer.GET("/cart/ws", user.CartWebSocket)

		buyer.GET("/wishlist", user.GetWishlist)
		buyer.POST("/wishlist", user.AddToWishlist)
		buyer.DELETE("/wishlist/:productId", user.RemoveFromWishlist)

		buyer.POST("/checkout", user.Checkout)
		buyer.GET("/orders", user.ListOrders)
		buyer.PUT("/orders/:id/cancel", user.CancelOrder)
	}

	// Espace vendeur
	sellerGroup := api.Group("/seller")
	sellerGroup.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleSeller))
	{
		sellerGroup.GET("/products", seller.ListMyProducts)
		sellerGroup.POST("/products", seller.CreateProduct)
		sellerGroup.PUT("/products/:id", seller.UpdateProduct)
		sellerGroup.DELETE("/products/:id", seller.DeleteProduct)
		sellerGroup.POST("/upload", seller.UploadImage)

		sellerGroup.GET("/orders", seller.ListOrders)
		sellerGroup.PUT("/orders/:id/status", seller.UpdateStatus)
		sellerGroup.PUT("/orders/:id/advance", seller.AdvanceOrder)
	}

	// Console d'administration
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/stats", admin.Stats)

		adminGroup.GET("/users", admin.ListUsers)
		adminGroup.PUT("/users/:id/role", admin.SetUserRole)
		adminGroup.DELETE("/users/:id", admin.DeleteUser)

		adminGroup.GET("/products", admin.ListProducts)
		adminGroup.PUT("/products/:id", admin.UpdateProduct)
		adminGroup.PUT("/products/:id/active", admin.ToggleProductActive)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)

		adminGroup.GET("/orders", admin.ListOrders)
		adminGroup.GET("/orders/:id", admin.GetOrder)
		adminGroup.PUT("/orders/:id/status", admin.SetStatus)
	}
}
