package handlers

import (
	"errors"
	"net/http"

	request "servitec/internal/adapter/http/dto/request"
	response "servitec/internal/adapter/http/dto/response"
	"servitec/internal/usecase"
	"servitec/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid service selection payload", http.StatusBadRequest)

// CatalogHandler serves the service catalog: the taxonomy, the camera kits,
// the maintenance materials and the resolver that prices a selection.

type CatalogHandler struct {
	catalog usecase.IServiceCatalogUseCase
}

func NewCatalogHandler(uc usecase.IServiceCatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: uc}
}

func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceTypes(h.catalog.ServiceTypes()))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalog.CategoriesFor(c.Param("id"))
	if categories == nil {
		appErr := pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceCategories(categories))
}

func (h *CatalogHandler) ListKits(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCameraKits(h.catalog.Kits()))
}

func (h *CatalogHandler) ListMaintenanceMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMaintenanceMaterials(h.catalog.MaintenanceMaterials()))
}

// ResolveService prices a selection without touching any order. The dispatcher
// client uses it as the "add service" preview.
func (h *CatalogHandler) ResolveService(c *gin.Context) {
	var payload request.ServiceSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	svc, err := h.catalog.ResolveService(c.Request.Context(), payload.ToSelection())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSelection),
		errors.Is(err, usecase.ErrIncompleteCustomConfig),
		errors.Is(err, usecase.ErrEmptySelection),
		errors.Is(err, usecase.ErrIncompleteMaterial):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Invalid service selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownKit):
		return pkg.NewDomainErrorSimple("KIT_NOT_FOUND", "Camera kit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
