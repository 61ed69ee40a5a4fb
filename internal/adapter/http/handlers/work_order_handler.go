package handlers

import (
	"errors"
	"net/http"

	request "servitec/internal/adapter/http/dto/request"
	response "servitec/internal/adapter/http/dto/response"
	"servitec/internal/domain/entities"
	"servitec/internal/usecase"
	"servitec/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for the order ledger. Order creation
// also runs the catalog resolver: clients send selections and every price on
// the stored order is computed server-side.

type WorkOrderHandler struct {
	orders  usecase.IWorkOrderUseCase
	catalog usecase.IServiceCatalogUseCase
}

func NewWorkOrderHandler(orders usecase.IWorkOrderUseCase, catalog usecase.IServiceCatalogUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{orders: orders, catalog: catalog}
}

func (h *WorkOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveServiceDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SERVICE_DATE", "Invalid service date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	services := make([]entities.Service, 0, len(payload.Services))
	for _, sel := range payload.Services {
		svc, err := h.catalog.ResolveService(c.Request.Context(), sel.ToSelection())
		if err != nil {
			appErr := mapCatalogError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		services = append(services, svc)
	}

	var customer *entities.Customer
	if payload.Customer != nil {
		customer = payload.Customer.ToEntity()
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), customer, date, services, payload.InitialObservations)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.AssignTechnician(c.Request.Context(), c.Param("id"), payload.TechnicianID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// RemoveTechnician removes an assignment. The optional reason query parameter
// ends up in the order's technician history.
func (h *WorkOrderHandler) RemoveTechnician(c *gin.Context) {
	order, err := h.orders.RemoveTechnician(c.Request.Context(), c.Param("id"), c.Param("technician_id"), c.Query("reason"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) AddExtraMaterial(c *gin.Context) {
	var payload request.ExtraMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.AddExtraMaterial(c.Request.Context(), c.Param("id"), payload.Name, payload.Quantity, payload.UnitPrice)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) RemoveExtraMaterial(c *gin.Context) {
	order, err := h.orders.RemoveExtraMaterial(c.Request.Context(), c.Param("id"), c.Param("material_id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ListTechnicians(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTechnicians(h.orders.Technicians()))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoCustomer),
		errors.Is(err, usecase.ErrNoDate),
		errors.Is(err, usecase.ErrNoServices),
		errors.Is(err, usecase.ErrIncompleteMaterial):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownTechnician):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		return pkg.NewDomainErrorSimple("TECHNICIAN_ALREADY_ASSIGNED", "Technician already assigned to this order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
