package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artizans_back_end/internal/cache"
	"artizans_back_end/internal/config"
	"artizans_back_end/internal/database"
	"artizans_back_end/internal/handlers/auth"
	"artizans_back_end/internal/handlers/order"
	"artizans_back_end/internal/handlers/product"
	"artizans_back_end/internal/handlers/review"
	"artizans_back_end/internal/handlers/stats"
	"artizans_back_end/internal/handlers/user"
	"artizans_back_end/internal/middleware"
)

// RegisterRoutes wires every handler group against the shared database
// handle. The route paths match what the storefront already calls.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *database.Mongo, revoked *cache.Cache) {
	authHandler := auth.New(cfg, revoked)
	products := product.New(db)
	orders := order.New(db)
	reviews := review.New(db)
	users := user.New(db)
	adminStats := stats.New(db)

	verify := middleware.AuthRequired(cfg, revoked)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Artizans server is running")
	})

	// Auth
	r.POST("/jwt", authHandler.CreateToken)
	r.POST("/logout", authHandler.Logout)

	// Products
	r.POST("/addProduct", products.CreateProduct)
	r.GET("/products", products.GetAllProducts)
	r.GET("/featured-products", products.GetFeaturedProducts)
	r.GET("/products/:id", products.GetProductByID)
	r.GET("/search", products.SearchProducts)
	r.GET("/category/:category", products.GetProductsByCategory)
	r.PUT("/update-product/:id", products.UpdateProduct)
	r.DELETE("/delete-a-product/:id", products.DeleteProduct)

	// Orders
	r.POST("/place-order", orders.PlaceOrder)
	r.GET("/orders", verify, orders.GetAllOrders)
	r.GET("/my-orders/:email", verify, orders.GetOrdersByEmail)
	r.PATCH("/orders/:id", verify, orders.UpdateOrderStatus)

	// Reviews
	r.POST("/reviews", reviews.CreateReview)
	r.GET("/reviews", reviews.GetAllReviews)

	// Users
	r.POST("/users", users.CreateUser)
	r.GET("/user", users.GetUserByEmail)

	// Admin dashboard
	r.GET("/admin-stats", verify, adminStats.GetAdminStats)
}
