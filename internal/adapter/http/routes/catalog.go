package routes

import (
	"servitec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	cat := rg.Group(PathCatalog)
	{
		cat.GET("/service-types", catalogHandler.ListServiceTypes)
		cat.GET("/service-types/:id/categories", catalogHandler.ListCategories)
		cat.GET("/kits", catalogHandler.ListKits)
		cat.GET("/maintenance-materials", catalogHandler.ListMaintenanceMaterials)
		cat.POST("/resolve-service", catalogHandler.ResolveService)
	}
}
