package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/internal/config"
	"newsdesk/internal/handler"
	"newsdesk/internal/infrastructure/database"
	"newsdesk/internal/logger"
	"newsdesk/internal/metrics"
	"newsdesk/internal/middleware"
	"newsdesk/internal/repository"
	"newsdesk/internal/service"
	"newsdesk/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, v)
	articleService := service.NewArticleService(articleRepo, commentRepo, v, cfg.FeaturedLimit)
	commentService := service.NewCommentService(commentRepo, v)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	adminHandler := handler.NewAdminHandler(categoryService, articleService, commentService)
	healthHandler := handler.NewHealthHandler(pool)

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is not set; administrative endpoints will reject all requests")
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
		}

		// Article routes. Fixed paths are registered before the
		// parameterized one so gin routes them correctly.
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/featured", articleHandler.Featured)
			articles.GET("/search", articleHandler.Search)
			articles.GET("/:id", articleHandler.Get)
		}

		// Comment routes
		comments := v1.Group("/comments")
		{
			comments.GET("", commentHandler.List)
			comments.GET("/:id", commentHandler.Get)
			comments.POST("", commentHandler.Create)
			comments.PUT("/:id", commentHandler.Update)
			comments.PATCH("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		// Administrative routes
		admin := v1.Group("/admin", middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/categories", adminHandler.ListCategories)
			admin.GET("/categories/:id", adminHandler.GetCategory)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/articles", adminHandler.ListArticles)
			admin.GET("/articles/:id", adminHandler.GetArticle)
			admin.POST("/articles", adminHandler.CreateArticle)
			admin.PUT("/articles/:id", adminHandler.UpdateArticle)
			admin.DELETE("/articles/:id", adminHandler.DeleteArticle)

			admin.GET("/comments", adminHandler.ListComments)
			admin.GET("/comments/:id", adminHandler.GetComment)
			admin.POST("/comments/approve", adminHandler.BulkApproveComments)
			admin.PUT("/comments/:id", adminHandler.UpdateComment)
			admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
