package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/auth"
	"github.com/petsphere/petsphere-api/internal/handlers"
	"github.com/petsphere/petsphere-api/internal/middleware"
)

// CORSMiddleware lets the storefront SPA talk to the API with its session
// cookie attached.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint of the storefront API.
func SetupRouter(h *handlers.Handlers, gateway *auth.Gateway) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)

		// --- Public Catalog Routes ---
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)

		// --- Protected Routes (Login Required) ---
		authed := api.Group("/")
		authed.Use(middleware.RequireAuth(gateway))
		{
			authed.GET("/user", h.GetCurrentUser)
			authed.PUT("/user", h.UpdateProfile)

			// --- Catalog Management ---
			authed.POST("/products", h.CreateProduct)
			authed.PUT("/products/:id", h.UpdateProduct)
			authed.DELETE("/products/:id", h.DeleteProduct)

			// --- Cart ---
			authed.GET("/cart", h.GetCart)
			authed.POST("/cart", h.AddToCart)
			authed.PUT("/cart/:id", h.UpdateCartItem)
			authed.DELETE("/cart/:id", h.RemoveFromCart)
			authed.DELETE("/cart", h.ClearCart)

			// --- Orders ---
			authed.GET("/orders", h.GetOrders)
			authed.GET("/orders/:id", h.GetOrder)
			authed.POST("/orders", h.CreateOrder)
			authed.PUT("/orders/:id/status", h.UpdateOrderStatus)

			// --- Appointments ---
			authed.GET("/appointments", h.GetAppointments)
			authed.GET("/appointments/:id", h.GetAppointment)
			authed.POST("/appointments", h.CreateAppointment)
			authed.PUT("/appointments/:id/status", h.UpdateAppointmentStatus)

			// --- Wishlist ---
			authed.GET("/wishlist", h.GetWishlist)
			authed.POST("/wishlist", h.AddToWishlist)
			authed.DELETE("/wishlist/:id", h.RemoveFromWishlist)
		}
	}

	return router
}
