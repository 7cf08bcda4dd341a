package main

import (
	"fmt"
	"net/http"
	"os"

	"aureus/internal/config"
	"aureus/internal/database"
	"aureus/internal/handlers"
	"aureus/internal/logger"
	"aureus/internal/middleware"
	"aureus/internal/services"
	"aureus/internal/store"
	"aureus/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "aureus/internal/docs" // Import swagger docs
)

// @title           Aureus API
// @version         1.0
// @description     Aureus is a personal expense tracker: accounts record categorized expenses, view monthly dashboards, and export filtered reports.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize the document store and services
	st := store.New(dbManager.DB())
	sessionService := services.NewSessionService(st)
	accountService := services.NewAccountService(st, sessionService)
	categoryService := services.NewCategoryService(st, sessionService)
	ledgerService := services.NewLedgerService(st, sessionService)
	contactService := services.NewContactService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService, sessionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(ledgerService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// Contact intake is independent of authentication
	v1.POST("/contact", contactHandler.Submit)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.RequireSession(sessionService))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.PUT("/auth/password", authHandler.ChangePassword)
	protected.GET("/profile", authHandler.GetProfile)

	// Category registry routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:name", categoryHandler.Rename)
	categories.DELETE("/:name", categoryHandler.Delete)

	// Ledger routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/report", expenseHandler.Report)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	// Dashboard projection
	protected.GET("/dashboard", dashboardHandler.Summary)

	// Administrator contact-log view
	protected.GET("/contact", middleware.AdminOnly(), contactHandler.List)

	log.Infof("Starting Aureus backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
