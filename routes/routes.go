package routes

import (
	"InjetaClin/cache"
	"InjetaClin/config"
	"InjetaClin/controllers"
	"InjetaClin/handlers"
	"InjetaClin/middlewares"
	"InjetaClin/repositories"
	"InjetaClin/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	patientRepo := repositories.NewPatientRepository(cache)
	diagnosisRepo := repositories.NewDiagnosisRepository(cache)
	protocolRepo := repositories.NewProtocolRepository(cache)
	treatmentRepo := repositories.NewTreatmentRepository(cache)
	doseRepo := repositories.NewDoseRepository(cache)
	inventoryRepo := repositories.NewInventoryRepository(cache)
	purchaseRequestRepo := repositories.NewPurchaseRequestRepository(cache)
	saleRepo := repositories.NewSaleRepository(cache)
	dismissedLogRepo := repositories.NewDismissedLogRepository(cache)
	documentRepo := repositories.NewDocumentRepository(cache)

	// Initialize services
	scheduleService := services.NewScheduleService(treatmentRepo, doseRepo)
	contactService := services.NewContactService(treatmentRepo, dismissedLogRepo)
	purchaseService := services.NewPurchaseService(treatmentRepo, doseRepo, inventoryRepo, purchaseRequestRepo)

	// Initialize handlers
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	diagnosisHandler := handlers.NewDiagnosisHandler(services.NewDiagnosisService(diagnosisRepo))
	protocolHandler := handlers.NewProtocolHandler(services.NewProtocolService(protocolRepo))
	treatmentHandler := handlers.NewTreatmentHandler(services.NewTreatmentService(treatmentRepo), scheduleService)
	doseHandler := handlers.NewDoseHandler(services.NewDoseService(doseRepo))
	dashboardHandler := handlers.NewDashboardHandler(scheduleService)
	contactHandler := handlers.NewContactHandler(contactService)
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(inventoryRepo))
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	salesHandler := handlers.NewSalesHandler(services.NewSalesService(saleRepo))
	documentHandler := handlers.NewDocumentHandler(services.NewDocumentService(documentRepo))

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		patientHandler,
		diagnosisHandler,
		protocolHandler,
		treatmentHandler,
		doseHandler,
		dashboardHandler,
		contactHandler,
		inventoryHandler,
		purchaseHandler,
		salesHandler,
		documentHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
