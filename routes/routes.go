package routes

import (
	"net/http"
	"time"

	"github.com/awalle000/Fadila-sales-system/handlers"
	"github.com/awalle000/Fadila-sales-system/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication and staff account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.Auth.ProfileHandler)
		api.POST("/register", middleware.CEOOnly(), hb.Auth.RegisterHandler)
		api.GET("/users", middleware.CEOOnly(), hb.Auth.ListUsersHandler)
		api.PUT("/users/:id/status", middleware.CEOOnly(), hb.Auth.SetUserStatusHandler)
	}
}

// RegisterProductRoutes registers catalog endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ManagerOrCEO())
		api.GET("", hb.Products.ListProductsHandler)
		api.POST("", hb.Products.CreateProductHandler)
		api.GET("/low-stock", hb.Products.ListLowStockHandler)
		api.GET("/:id", hb.Products.GetProductByIDHandler)
		api.PUT("/:id", hb.Products.UpdateProductHandler)
		api.DELETE("/:id", middleware.CEOOnly(), hb.Products.DeleteProductHandler)
	}
}

// RegisterSalesRoutes registers point-of-sale endpoints.
func RegisterSalesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sales")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ManagerOrCEO())
		api.POST("", hb.Sales.RecordSaleHandler)
		api.GET("", hb.Sales.ListSalesHandler)
		api.GET("/daily/:date", hb.Sales.DailySalesHandler)
		api.GET("/monthly/:year/:month", hb.Sales.MonthlySalesHandler)
	}
}

// RegisterInvoiceRoutes registers the invoice lifecycle endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ManagerOrCEO())
		api.POST("", hb.Invoices.CreateInvoiceHandler)
		api.GET("", hb.Invoices.ListInvoicesHandler)
		api.GET("/:id", hb.Invoices.GetInvoiceByIDHandler)
		api.PUT("/:id", hb.Invoices.UpdateInvoiceHandler)
		api.POST("/:id/payments", hb.Invoices.RecordPaymentHandler)
		api.DELETE("/:id", middleware.CEOOnly(), hb.Invoices.DeleteInvoiceHandler)
	}
}

// RegisterReportRoutes registers the read-only report endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.ManagerOrCEO())
		api.GET("/daily/:date", hb.Reports.DailyReportHandler)
		api.GET("/monthly/:year/:month", hb.Reports.MonthlyReportHandler)
		api.GET("/profit-loss", hb.Reports.ProfitLossHandler)
	}
}

// RegisterActivityRoutes registers audit trail endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activity")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.CEOOnly())
		api.GET("", hb.Activity.ListActivitiesHandler)
		api.GET("/logins", hb.Activity.ListLoginsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Fadila sales system"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterSalesRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterHealthRoute(r)
}
