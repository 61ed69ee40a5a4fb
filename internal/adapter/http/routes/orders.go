package routes

import (
	"servitec/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathTechnicians = "/technicians"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.WorkOrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)

		orders.POST("/:id/technicians", orderHandler.AssignTechnician)
		orders.DELETE("/:id/technicians/:technician_id", orderHandler.RemoveTechnician)

		orders.POST("/:id/materials", orderHandler.AddExtraMaterial)
		orders.DELETE("/:id/materials/:material_id", orderHandler.RemoveExtraMaterial)
	}

	rg.GET(PathTechnicians, orderHandler.ListTechnicians)
}
