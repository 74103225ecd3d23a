package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vendia_back_end/internal/handlers/order"
	"vendia_back_end/internal/handlers/product"
	"vendia_back_end/internal/handlers/user"
	"vendia_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, users *user.Handler, products *product.Handler, orders *order.Handler) {
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "VENDIA-BACKEND")
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Authentification
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), users.Register)
		auth.POST("/login", middleware.LoginRateLimit(), users.Login)
		auth.GET("/me", middleware.AuthRequired(), users.Me)
	}

	// Catalogue produits
	prod := api.Group("/products")
	{
		// Lecture publique
		prod.GET("", products.GetProducts)
		prod.GET("/search", products.SearchProducts)
		prod.GET("/:id", products.GetProductByID)

		// Gestion réservée aux administrateurs
		admin := prod.Group("", middleware.AuthRequired(), middleware.RequireAdmin)
		{
			admin.POST("", products.CreateProduct)
			admin.PUT("/:id", products.UpdateProduct)
			admin.DELETE("/:id", products.DeleteProduct)
			admin.POST("/:id/image", products.UploadProductImage)
		}
	}

	// Commandes
	ord := api.Group("/orders", middleware.AuthRequired())
	{
		// Routes client
		ord.POST("", middleware.RequireCustomer, orders.CreateOrder)
		ord.GET("/myorders", middleware.RequireCustomer, orders.GetMyOrders)

		// Routes admin
		ord.GET("", middleware.RequireAdmin, orders.GetOrders)
		ord.GET("/:id", middleware.RequireAdmin, orders.GetOrderByID)
		ord.PUT("/:id/status", middleware.RequireAdmin, orders.UpdateOrderStatus)
	}
}
