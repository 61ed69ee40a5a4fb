package response

import (
	"encoding/json"
	"testing"
	"time"

	"servitec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromWorkOrder(t *testing.T) {
	date := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	manual := decimal.RequireFromString("500")
	o := entities.WorkOrder{
		ID:          "ORD-1",
		Customer:    &entities.Customer{ID: "1", Name: "Juan Pérez"},
		ServiceDate: &date,
		Services: []entities.Service{
			{ID: "svc-1", ServiceType: "cameras", Category: "installation", KitID: "kit-4", TotalPrice: decimal.RequireFromString("624.92")},
		},
		ExtraMaterials:    []entities.Material{{ID: "x1", Name: "Tornillería", Quantity: 2, UnitPrice: decimal.NewFromInt(10)}},
		TotalAmount:       decimal.RequireFromString("644.92"),
		ManualTotalAmount: &manual,
		Status:            entities.OrderStatusPending,
		AssignedTechnicians: []entities.AssignedTechnician{
			{Technician: entities.Technician{ID: "t1", Name: "Carlos Méndez", SoloCommission: decimal.NewFromInt(50), GroupCommission: decimal.NewFromInt(30)}, AssignedAt: date},
		},
		TechnicianHistory: []entities.TechnicianHistoryEntry{
			{ID: "h1", Technician: entities.Technician{ID: "t2"}, AssignedAt: date, RemovedAt: date, RemovedReason: "Reasignado"},
		},
	}

	resp := FromWorkOrder(o)
	if resp.TotalAmount != "644.92" || resp.ManualTotalAmount != "500.00" || resp.EffectiveTotal != "500.00" {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if resp.ExtraMaterials[0].LineTotal != "20.00" {
		t.Fatalf("unexpected line total: %+v", resp.ExtraMaterials[0])
	}
	if resp.Services[0].TotalPrice != "624.92" || resp.Services[0].KitID != "kit-4" {
		t.Fatalf("unexpected service: %+v", resp.Services[0])
	}
	if resp.AssignedTechnicians[0].Technician.SoloCommission != "50.00" {
		t.Fatalf("unexpected technician: %+v", resp.AssignedTechnicians[0])
	}
	if resp.TechnicianHistory[0].RemovedReason != "Reasignado" {
		t.Fatalf("unexpected history: %+v", resp.TechnicianHistory[0])
	}
}

// manual_total_amount must disappear from the JSON when no override is set; an
// empty string would read as a zero total.
func TestWorkOrderResponseOmitsAbsentManualTotal(t *testing.T) {
	resp := FromWorkOrder(entities.WorkOrder{ID: "ORD-1", TotalAmount: decimal.RequireFromString("340.00")})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if _, present := body["manual_total_amount"]; present {
		t.Fatalf("manual_total_amount should be omitted: %s", raw)
	}
	if body["effective_total"] != "340.00" {
		t.Fatalf("unexpected effective total: %s", raw)
	}
}

func TestFromCameraKit(t *testing.T) {
	kit := entities.CameraKit{
		ID:          "kit-4",
		Name:        "Kit 4 Cámaras",
		CameraCount: 4,
		Materials:   []entities.Material{{ID: "m1", Name: "Cámara IP 1080p", Quantity: 4, UnitPrice: decimal.RequireFromString("89.99")}},
		TotalPrice:  decimal.RequireFromString("624.92"),
	}

	resp := FromCameraKit(kit)
	if resp.TotalPrice != "624.92" || resp.Materials[0].LineTotal != "359.96" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
