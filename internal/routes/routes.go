package routes

import (
	"github.com/gin-gonic/gin"

	"laundry_express_back_end/internal/handlers/admin"
	"laundry_express_back_end/internal/handlers/catalog"
	"laundry_express_back_end/internal/handlers/order"
	"laundry_express_back_end/internal/handlers/payement"
	"laundry_express_back_end/internal/handlers/pincode"
	"laundry_express_back_end/internal/handlers/user"
	"laundry_express_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Auth
	api.POST("/auth/register", middleware.RegisterRateLimit(), user.Register)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/me", middleware.AuthRequired(), user.Me)

	// Couverture géographique
	api.POST("/pincode/check", pincode.Check)

	// Catalogue public
	api.GET("/products", catalog.GetProducts)
	api.GET("/products/search", catalog.SearchProducts)
	api.GET("/service-types", catalog.GetServiceTypes)
	api.GET("/categories", catalog.GetCategories)

	// Webhook Stripe : public, authentifié par signature
	api.POST("/payment/webhook", payement.StripeWebhook)

	// Espace client
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/orders", order.CreateOrder)
		authed.GET("/orders", order.GetOrders)
		authed.GET("/orders/:id", order.GetOrderByID)
		authed.POST("/payment/create-intent", payement.CreatePaymentIntent)
	}

	// Back-office
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin())
	{
		adminGroup.GET("/orders", admin.GetAllOrders)
		adminGroup.PATCH("/orders/:id/status", admin.UpdateOrderStatus)

		adminGroup.GET("/products", admin.GetAdminProducts)
		adminGroup.POST("/products", admin.CreateProduct)
		adminGroup.PUT("/products/:id", admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)
		adminGroup.POST("/products/reorder", admin.ReorderProducts)
		adminGroup.POST("/products/icon", admin.UploadProductIcon)

		adminGroup.GET("/businesses", admin.GetBusinesses)
		// Création réservée aux admins plateforme
		adminGroup.POST("/businesses", middleware.RequirePlatformAdmin(), admin.CreateBusiness)

		adminGroup.GET("/stats", admin.GetAdminStats)
	}
}
