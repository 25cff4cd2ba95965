package routes

import (
	"network-portal-backend/internal/api/handlers"
	"network-portal-backend/internal/api/middleware"
	"network-portal-backend/internal/auth"
	"network-portal-backend/internal/config"
	"network-portal-backend/internal/librenms"
	"network-portal-backend/internal/repository"
	"network-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)

	// Initialize upstream client and services
	upstream := librenms.NewClient(cfg)
	authService := auth.NewAuthService(cfg, db, tenantRepo, userRepo, validate)
	deviceService := service.NewDeviceService(ownershipRepo, upstream, validate)

	// Initialize handlers and middleware
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	healthHandler := handlers.NewHealthHandler(db)
	deviceHandler := handlers.NewDeviceHandler(deviceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Public auth routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Device routes - bearer token required
		devices := api.Group("/devices")
		devices.Use(authMiddleware.RequireAuth())
		{
			devices.GET("", deviceHandler.ListDevices)
			devices.POST("", deviceHandler.AddDevice)
			devices.GET("/:id", deviceHandler.GetDevice)
			devices.GET("/:id/eventlog", deviceHandler.GetEventLog)
		}

		// The graph route streams images consumed by <img> elements, which
		// cannot set headers, so it alone accepts ?token= as a fallback.
		graphs := api.Group("/devices")
		graphs.Use(authMiddleware.RequireAuthWithQueryToken())
		{
			graphs.GET("/:id/:graphType", deviceHandler.GetGraph)
		}
	}

	return router
}
