package request

import (
	"errors"
	"strings"
	"time"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidServiceDate = errors.New("invalid service date")
)

// CustomKitID is the wire value a client sends as kit_id to request a custom
// camera configuration instead of a fixed kit.
const CustomKitID = "custom"

type MaterialRequest struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (m MaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Name:      strings.TrimSpace(m.Name),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}

func toMaterials(in []MaterialRequest) []entities.Material {
	out := make([]entities.Material, 0, len(in))
	for _, m := range in {
		out = append(out, m.ToEntity())
	}
	return out
}

// ServiceSelectionRequest is the wire form of a catalog selection. kit_id keeps
// the legacy "custom" sentinel for compatibility with the dispatcher client;
// ToSelection maps it onto the explicit kit/custom split the resolver expects.
type ServiceSelectionRequest struct {
	ServiceType            string            `json:"service_type" binding:"required"`
	Category               string            `json:"category" binding:"required"`
	KitID                  string            `json:"kit_id"`
	CustomCameraCount      int               `json:"custom_camera_count"`
	CustomMaterials        []MaterialRequest `json:"custom_materials"`
	MaintenanceMaterialIDs []string          `json:"maintenance_material_ids"`
}

func (r ServiceSelectionRequest) ToSelection() usecase.ServiceSelection {
	sel := usecase.ServiceSelection{
		ServiceType:            strings.TrimSpace(r.ServiceType),
		Category:               strings.TrimSpace(r.Category),
		MaintenanceMaterialIDs: r.MaintenanceMaterialIDs,
	}
	switch kitID := strings.TrimSpace(r.KitID); kitID {
	case "":
	case CustomKitID:
		sel.Kit = &usecase.KitSelection{Custom: &usecase.CustomKitConfig{
			CameraCount: r.CustomCameraCount,
			Materials:   toMaterials(r.CustomMaterials),
		}}
	default:
		sel.Kit = &usecase.KitSelection{FixedKitID: kitID}
	}
	return sel
}

type CustomerRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r CustomerRequest) ToEntity() *entities.Customer {
	return &entities.Customer{
		ID:    r.ID,
		Name:  strings.TrimSpace(r.Name),
		Phone: r.Phone,
		Email: r.Email,
	}
}

// CreateWorkOrderRequest carries catalog selections, not priced services. The
// handler resolves each selection server-side so every total on an order comes
// from the catalog resolver, never from the client.
type CreateWorkOrderRequest struct {
	Customer            *CustomerRequest          `json:"customer"`
	ServiceDate         string                    `json:"service_date"`
	Services            []ServiceSelectionRequest `json:"services"`
	InitialObservations string                    `json:"initial_observations"`
}

// ResolveServiceDate parses service_date as RFC 3339 or as a plain 2006-01-02
// day. An empty value yields a nil date; the ledger rejects that itself.
func (r CreateWorkOrderRequest) ResolveServiceDate() (*time.Time, error) {
	raw := strings.TrimSpace(r.ServiceDate)
	if raw == "" {
		return nil, nil
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		d = d.UTC()
		return &d, nil
	}
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		d = d.UTC()
		return &d, nil
	}
	return nil, ErrInvalidServiceDate
}

type UpdateWorkOrderRequest struct {
	Status                 *string            `json:"status"`
	InitialObservations    *string            `json:"initial_observations"`
	TechnicianObservations *string            `json:"technician_observations"`
	AssignedTechnicianIDs  *[]string          `json:"assigned_technician_ids"`
	ExtraMaterials         *[]MaterialRequest `json:"extra_materials"`
	ManualTotalAmount      *decimal.Decimal   `json:"manual_total_amount"`
	ClearManualTotal       bool               `json:"clear_manual_total"`
}

// ToPatch validates the status value, if any, and maps the request onto the
// ledger's patch. Absent fields stay nil and are left unchanged.
func (r UpdateWorkOrderRequest) ToPatch() (usecase.UpdateOrderPatch, error) {
	patch := usecase.UpdateOrderPatch{
		InitialObservations:    r.InitialObservations,
		TechnicianObservations: r.TechnicianObservations,
		AssignedTechnicianIDs:  r.AssignedTechnicianIDs,
		ManualTotalAmount:      r.ManualTotalAmount,
		ClearManualTotal:       r.ClearManualTotal,
	}
	if r.Status != nil {
		status := entities.OrderStatus(strings.TrimSpace(*r.Status))
		if !status.IsValid() {
			return usecase.UpdateOrderPatch{}, ErrInvalidStatus
		}
		patch.Status = &status
	}
	if r.ExtraMaterials != nil {
		materials := toMaterials(*r.ExtraMaterials)
		patch.ExtraMaterials = &materials
	}
	return patch, nil
}

type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

type ExtraMaterialRequest struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
