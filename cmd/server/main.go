package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/orderhub/backend/internal/application/catalog"
	appordering "github.com/orderhub/backend/internal/application/ordering"
	apppartner "github.com/orderhub/backend/internal/application/partner"
	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/infrastructure/config"
	"github.com/orderhub/backend/internal/infrastructure/logger"
	"github.com/orderhub/backend/internal/infrastructure/persistence"
	"github.com/orderhub/backend/internal/infrastructure/scheduler"
	"github.com/orderhub/backend/internal/interfaces/http/handler"
	"github.com/orderhub/backend/internal/interfaces/http/middleware"
	"github.com/orderhub/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env))

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)

	// Services
	orderService := appordering.NewOrderService(orderRepo, customerRepo, log, nil)
	customerService := apppartner.NewCustomerService(customerRepo, log)
	productService := appcatalog.NewProductService(productRepo, log)

	rules := ordering.DefaultTransitionRules(
		cfg.Lifecycle.PendingIdle,
		cfg.Lifecycle.ProcessingIdle,
		cfg.Lifecycle.ShippingIdle,
	)
	lifecycleService := appordering.NewLifecycleService(orderRepo, rules, log, nil)

	lifecycleScheduler, err := scheduler.NewLifecycleScheduler(lifecycleService, log, scheduler.LifecycleSchedulerConfig{
		Enabled:      cfg.Lifecycle.Enabled,
		PollInterval: cfg.Lifecycle.PollInterval,
		SweepTimeout: cfg.Lifecycle.SweepTimeout,
	})
	if err != nil {
		log.Fatal("Failed to create lifecycle scheduler", zap.Error(err))
	}
	if err := lifecycleScheduler.Start(context.Background()); err != nil {
		log.Fatal("Failed to start lifecycle scheduler", zap.Error(err))
	}

	// HTTP engine and middleware
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"scheduler": lifecycleScheduler.IsRunning(),
		})
	})

	// Routes
	router.NewRouter(engine).
		Register(handler.OrderRoutes(handler.NewOrderHandler(orderService))).
		Register(handler.CustomerRoutes(handler.NewCustomerHandler(customerService))).
		Register(handler.ProductRoutes(handler.NewProductHandler(productService))).
		Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := lifecycleScheduler.Stop(shutdownCtx); err != nil {
		log.Error("Lifecycle scheduler shutdown failed", zap.Error(err))
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
