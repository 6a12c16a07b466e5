package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdjewellers/storefront-backend/controllers"
	"github.com/jdjewellers/storefront-backend/middleware"
	"github.com/jdjewellers/storefront-backend/services"
	"golang.org/x/time/rate"
)

type Controllers struct {
	Session         *controllers.SessionController
	Product         *controllers.ProductController
	Cart            *controllers.CartController
	Checkout        *controllers.CheckoutController
	Contact         *controllers.ContactController
	Auth            *controllers.AuthController
	AdminProduct    *controllers.AdminProductController
	AdminBanner     *controllers.AdminBannerController
	AdminSuggestion *controllers.AdminSuggestionController
	AdminOrder      *controllers.AdminOrderController
}

// Register wires all application routes.
func Register(r *gin.Engine, c Controllers, tokens *services.TokenService, auth *services.AuthService) {
	api := r.Group("/api")

	api.POST("/session", c.Session.GetOrCreate)
	api.GET("/products", c.Product.List)
	api.GET("/products/:id", c.Product.GetByID)
	api.GET("/banners", c.Product.Banners)
	api.POST("/contact", c.Contact.Submit)

	cart := api.Group("/cart")
	cart.GET("", c.Cart.Get)
	cart.POST("", c.Cart.AddItem)
	cart.PATCH("/:product_id", c.Cart.SetQuantity)
	cart.DELETE("/:product_id", c.Cart.RemoveItem)
	cart.DELETE("", c.Cart.Clear)

	// Checkout and auth carry a per-IP rate limit; the checkout one is
	// the backstop against rapid double-submits.
	api.POST("/checkout", middleware.RateLimit(rate.Every(time.Second), 5), c.Checkout.Submit)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(rate.Every(time.Second), 10))
	authGroup.POST("/register", c.Auth.Register)
	authGroup.POST("/login", c.Auth.Login)
	authGroup.GET("/me", middleware.AuthMiddleware(tokens), c.Auth.Me)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminOnly(auth))
	admin.POST("/products", c.AdminProduct.Create)
	admin.PUT("/products/:id", c.AdminProduct.Update)
	admin.DELETE("/products/:id", c.AdminProduct.Delete)
	admin.POST("/uploads", c.AdminProduct.UploadImage)
	admin.GET("/banners", c.AdminBanner.List)
	admin.POST("/banners", c.AdminBanner.Create)
	admin.PUT("/banners/:id", c.AdminBanner.Update)
	admin.DELETE("/banners/:id", c.AdminBanner.Delete)
	admin.GET("/suggestions", c.AdminSuggestion.List)
	admin.DELETE("/suggestions/:id", c.AdminSuggestion.Delete)
	admin.GET("/orders", c.AdminOrder.List)
}
