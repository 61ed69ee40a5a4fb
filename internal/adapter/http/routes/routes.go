package routes

import (
	"log"

	_ "servitec/docs" // swag-generated documentation
	"servitec/internal/adapter/http/handlers"
	"servitec/internal/adapter/persistence/repository"
	"servitec/internal/config"
	"servitec/internal/infrastructure/catalog"
	"servitec/internal/infrastructure/notification"
	"servitec/internal/infrastructure/roster"
	"servitec/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	notifier := notification.New(notification.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       notification.ParseLevel(cfg.App.LogLevel),
	})

	orderRepo := repository.NewWorkOrderMemoryRepository()
	serviceCatalog := catalog.New()
	technicianRoster := roster.New()

	catalogUseCase := usecase.NewServiceCatalogUseCase(serviceCatalog, notifier)
	orderUseCase := usecase.NewWorkOrderUseCase(orderRepo, technicianRoster, notifier)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewWorkOrderHandler(orderUseCase, catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
