package routes

import (
	"design-studio-backend/internal/api/handlers"
	"design-studio-backend/internal/api/middleware"
	"design-studio-backend/internal/config"
	"design-studio-backend/internal/repository"
	"design-studio-backend/internal/service"

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
	validator := validator.New()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	conceptItemRepo := repository.NewConceptItemRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, contractorRepo, validator)
	sectionService := service.NewSectionService(sectionRepo, projectRepo, validator)
	organizerService := service.NewOrganizerService(roomRepo, sectionRepo, projectRepo, validator)
	contractorService := service.NewContractorService(contractorRepo, validator)
	conceptItemService := service.NewConceptItemService(conceptItemRepo, roomRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	sectionHandler := handlers.NewSectionHandler(sectionService, organizerService)
	roomHandler := handlers.NewRoomHandler(organizerService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	conceptItemHandler := handlers.NewConceptItemHandler(conceptItemService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/layout", sectionHandler.GetProjectLayout)
			projects.GET("/:id/sections", sectionHandler.GetSectionsByProject)
			projects.GET("/:id/contractors", projectHandler.GetProjectContractors)
			projects.POST("/:id/contractors/:contractorId", projectHandler.AssignContractor)
			projects.DELETE("/:id/contractors/:contractorId", projectHandler.UnassignContractor)
		}

		// Section routes
		sections := v1.Group("/sections")
		{
			sections.POST("", sectionHandler.CreateSection)
			sections.PUT("/:id", sectionHandler.RenameSection)
			sections.DELETE("/:id", sectionHandler.DeleteSection)
		}

		// Room routes
		rooms := v1.Group("/rooms")
		{
			rooms.POST("", roomHandler.CreateRoom)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
			rooms.PUT("/:id/section", roomHandler.MoveRoom)
			rooms.POST("/:id/reorder", roomHandler.ReorderRoom)
			rooms.GET("/:id/concept-items", conceptItemHandler.GetConceptItems)
			rooms.POST("/:id/concept-items", conceptItemHandler.CreateConceptItem)
		}

		// Contractor routes
		contractors := v1.Group("/contractors")
		{
			contractors.GET("", contractorHandler.ListContractors)
			contractors.POST("", contractorHandler.CreateContractor)
			contractors.GET("/:id", contractorHandler.GetContractor)
			contractors.PUT("/:id", contractorHandler.UpdateContractor)
			contractors.DELETE("/:id", contractorHandler.DeleteContractor)
		}

		// Concept item routes
		conceptItems := v1.Group("/concept-items")
		{
			conceptItems.PUT("/:id", conceptItemHandler.UpdateConceptItem)
			conceptItems.DELETE("/:id", conceptItemHandler.DeleteConceptItem)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
