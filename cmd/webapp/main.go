package main

import (
	"finadvisor/internal/backend"
	"finadvisor/internal/config"
	"finadvisor/internal/handlers"
	"finadvisor/internal/logger"
	"finadvisor/internal/middleware"
	"finadvisor/internal/settings"
	"finadvisor/internal/validator"
	"finadvisor/web"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

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

	// Local settings store: remembered test user id for test deployments
	store, err := settings.Open(appConfig.SettingsDB)
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}

	// Backend API client
	client := backend.NewClient(appConfig.BackendURL, nil, backend.Options{
		RequestTimeout:      appConfig.RequestTimeout,
		ConsultationTimeout: appConfig.ConsultationTimeout,
		TestUsers:           store,
	})

	// Register custom form validators
	validator.Register()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(client)
	transactionsHandler := handlers.NewTransactionsHandler(client)
	capitalHandler := handlers.NewCapitalHandler(client)
	consultationHandler := handlers.NewConsultationHandler(client)
	settingsHandler := handlers.NewSettingsHandler(store)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Identity())

	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(middleware.NotFound)

	// Screens
	router.GET("/", dashboardHandler.Show)
	router.GET("/transactions", transactionsHandler.List)
	router.GET("/capital", capitalHandler.Show)
	router.GET("/consultation", consultationHandler.Show)

	// Transaction mutations
	router.POST("/transactions", transactionsHandler.Create)
	router.POST("/transactions/import", transactionsHandler.Import)
	router.POST("/transactions/import/preview", transactionsHandler.ImportPreview)
	router.POST("/transactions/import/apply", transactionsHandler.ImportApply)
	router.POST("/transactions/:id", transactionsHandler.Update)
	router.POST("/transactions/:id/delete", transactionsHandler.Delete)

	// Capital mutations
	router.POST("/capital", capitalHandler.Create)
	router.POST("/capital/:id", capitalHandler.Update)
	router.POST("/capital/:id/delete", capitalHandler.Delete)

	// Consultation and goals
	router.POST("/consultation/request", consultationHandler.Request)
	router.POST("/consultation/message", consultationHandler.Message)
	router.POST("/consultation/goals", consultationHandler.CreateGoal)
	router.POST("/consultation/goals/:id", consultationHandler.UpdateGoal)
	router.POST("/consultation/goals/:id/delete", consultationHandler.DeleteGoal)

	// Settings
	router.POST("/settings/test-user", settingsHandler.SetTestUser)

	log.Infof("Starting webapp on port %s (backend %s)", appConfig.Port, appConfig.BackendURL)
	return router.Run(":" + appConfig.Port)
}
