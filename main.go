package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awalle000/Fadila-sales-system/config"
	"github.com/awalle000/Fadila-sales-system/cron"
	"github.com/awalle000/Fadila-sales-system/database"
	activityRepoPkg "github.com/awalle000/Fadila-sales-system/database/repository/activity"
	invoiceRepoPkg "github.com/awalle000/Fadila-sales-system/database/repository/invoice"
	productRepoPkg "github.com/awalle000/Fadila-sales-system/database/repository/product"
	saleRepoPkg "github.com/awalle000/Fadila-sales-system/database/repository/sale"
	userRepoPkg "github.com/awalle000/Fadila-sales-system/database/repository/user"
	"github.com/awalle000/Fadila-sales-system/handlers"
	"github.com/awalle000/Fadila-sales-system/middleware"
	"github.com/awalle000/Fadila-sales-system/routes"
	"github.com/awalle000/Fadila-sales-system/services/activity"
	"github.com/awalle000/Fadila-sales-system/services/invoice"
	"github.com/awalle000/Fadila-sales-system/services/product"
	"github.com/awalle000/Fadila-sales-system/services/report"
	"github.com/awalle000/Fadila-sales-system/services/sales"
	"github.com/awalle000/Fadila-sales-system/services/user"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	saleRepo := saleRepoPkg.NewMongoSaleRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	counterRepo := invoiceRepoPkg.NewMongoCounterRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// services.
	auditService := &activity.DefaultActivityService{
		Repo: activityRepo,
	}

	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Audit: auditService,
	}

	productService := &product.DefaultProductService{
		Repo:  productRepo,
		Audit: auditService,
	}

	salesService := &sales.DefaultSalesService{
		Repo:     saleRepo,
		Products: productRepo,
		Audit:    auditService,
	}

	invoiceService := &invoice.DefaultInvoiceService{
		Repo:    invoiceRepo,
		Counter: counterRepo,
		Audit:   auditService,
	}

	reportService := &report.DefaultReportService{
		Sales: saleRepo,
		Cache: utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Products: handlers.NewProductHandler(productService),
		Sales:    handlers.NewSalesHandler(salesService),
		Invoices: handlers.NewInvoiceHandler(invoiceService),
		Reports:  handlers.NewReportHandler(reportService),
		Activity: handlers.NewActivityHandler(auditService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the overdue-invoice background worker.
	cron.InitOverdueWorker(invoiceRepo, auditService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
