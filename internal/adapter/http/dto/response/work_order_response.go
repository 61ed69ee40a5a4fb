package response

import (
	"time"

	"servitec/internal/domain/entities"
)

// Monetary fields are serialized as fixed two-decimal strings so clients never
// see binary-float artifacts.

type MaterialResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice.StringFixed(2),
		LineTotal: m.LineTotal().StringFixed(2),
	}
}

func fromMaterials(in []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(in))
	for _, m := range in {
		out = append(out, FromMaterial(m))
	}
	return out
}

type ServiceResponse struct {
	ID                string             `json:"id"`
	ServiceType       string             `json:"service_type"`
	Category          string             `json:"category"`
	KitID             string             `json:"kit_id,omitempty"`
	CustomCameraCount int                `json:"custom_camera_count,omitempty"`
	Materials         []MaterialResponse `json:"materials"`
	TotalPrice        string             `json:"total_price"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		ServiceType:       s.ServiceType,
		Category:          s.Category,
		KitID:             s.KitID,
		CustomCameraCount: s.CustomCameraCount,
		Materials:         fromMaterials(s.Materials),
		TotalPrice:        s.TotalPrice.StringFixed(2),
	}
}

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type TechnicianResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	Phone           string `json:"phone,omitempty"`
	SoloCommission  string `json:"solo_commission"`
	GroupCommission string `json:"group_commission"`
	IsAvailable     bool   `json:"is_available"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:              t.ID,
		Name:            t.Name,
		Specialty:       t.Specialty,
		Phone:           t.Phone,
		SoloCommission:  t.SoloCommission.StringFixed(2),
		GroupCommission: t.GroupCommission.StringFixed(2),
		IsAvailable:     t.IsAvailable,
	}
}

func FromTechnicians(in []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(in))
	for _, t := range in {
		out = append(out, FromTechnician(t))
	}
	return out
}

type AssignedTechnicianResponse struct {
	Technician TechnicianResponse `json:"technician"`
	AssignedAt time.Time          `json:"assigned_at"`
}

type TechnicianHistoryEntryResponse struct {
	ID            string             `json:"id"`
	Technician    TechnicianResponse `json:"technician"`
	AssignedAt    time.Time          `json:"assigned_at"`
	RemovedAt     time.Time          `json:"removed_at"`
	RemovedReason string             `json:"removed_reason"`
}

type WorkOrderResponse struct {
	ID          string            `json:"id"`
	Customer    *CustomerResponse `json:"customer"`
	ServiceDate *time.Time        `json:"service_date"`
	Services    []ServiceResponse `json:"services"`

	ExtraMaterials    []MaterialResponse `json:"extra_materials"`
	TotalAmount       string             `json:"total_amount"`
	ManualTotalAmount string             `json:"manual_total_amount,omitempty"`
	EffectiveTotal    string             `json:"effective_total"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	AssignedTechnicians []AssignedTechnicianResponse     `json:"assigned_technicians"`
	TechnicianHistory   []TechnicianHistoryEntryResponse `json:"technician_history"`

	InitialObservations    string `json:"initial_observations,omitempty"`
	TechnicianObservations string `json:"technician_observations,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:                     o.ID,
		ServiceDate:            o.ServiceDate,
		Services:               make([]ServiceResponse, 0, len(o.Services)),
		ExtraMaterials:         fromMaterials(o.ExtraMaterials),
		TotalAmount:            o.TotalAmount.StringFixed(2),
		EffectiveTotal:         o.EffectiveTotal().StringFixed(2),
		Status:                 string(o.Status),
		CreatedAt:              o.CreatedAt,
		AssignedTechnicians:    make([]AssignedTechnicianResponse, 0, len(o.AssignedTechnicians)),
		TechnicianHistory:      make([]TechnicianHistoryEntryResponse, 0, len(o.TechnicianHistory)),
		InitialObservations:    o.InitialObservations,
		TechnicianObservations: o.TechnicianObservations,
	}
	if o.Customer != nil {
		resp.Customer = &CustomerResponse{ID: o.Customer.ID, Name: o.Customer.Name, Phone: o.Customer.Phone, Email: o.Customer.Email}
	}
	if o.ManualTotalAmount != nil {
		resp.ManualTotalAmount = o.ManualTotalAmount.StringFixed(2)
	}
	for _, s := range o.Services {
		resp.Services = append(resp.Services, FromService(s))
	}
	for _, at := range o.AssignedTechnicians {
		resp.AssignedTechnicians = append(resp.AssignedTechnicians, AssignedTechnicianResponse{
			Technician: FromTechnician(at.Technician),
			AssignedAt: at.AssignedAt,
		})
	}
	for _, h := range o.TechnicianHistory {
		resp.TechnicianHistory = append(resp.TechnicianHistory, TechnicianHistoryEntryResponse{
			ID:            h.ID,
			Technician:    FromTechnician(h.Technician),
			AssignedAt:    h.AssignedAt,
			RemovedAt:     h.RemovedAt,
			RemovedReason: h.RemovedReason,
		})
	}
	return resp
}

func FromWorkOrders(in []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(in))
	for _, o := range in {
		out = append(out, FromWorkOrder(o))
	}
	return out
}
