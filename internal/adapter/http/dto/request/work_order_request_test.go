package request

import (
	"errors"
	"testing"

	"servitec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestServiceSelectionRequest_ToSelection(t *testing.T) {
	t.Run("fixed kit id", func(t *testing.T) {
		sel := ServiceSelectionRequest{ServiceType: " cameras ", Category: "installation", KitID: " kit-4 "}.ToSelection()
		if sel.ServiceType != "cameras" || sel.Category != "installation" {
			t.Fatalf("unexpected selection: %+v", sel)
		}
		if sel.Kit == nil || sel.Kit.FixedKitID != "kit-4" || sel.Kit.Custom != nil {
			t.Fatalf("unexpected kit: %+v", sel.Kit)
		}
	})

	t.Run("custom sentinel", func(t *testing.T) {
		sel := ServiceSelectionRequest{
			ServiceType:       "cameras",
			Category:          "installation",
			KitID:             CustomKitID,
			CustomCameraCount: 6,
			CustomMaterials:   []MaterialRequest{{Name: " Cámara ", Quantity: 6, UnitPrice: decimal.NewFromInt(50)}},
		}.ToSelection()
		if sel.Kit == nil || sel.Kit.Custom == nil || sel.Kit.FixedKitID != "" {
			t.Fatalf("unexpected kit: %+v", sel.Kit)
		}
		if sel.Kit.Custom.CameraCount != 6 || len(sel.Kit.Custom.Materials) != 1 {
			t.Fatalf("unexpected custom config: %+v", sel.Kit.Custom)
		}
		if sel.Kit.Custom.Materials[0].Name != "Cámara" {
			t.Fatalf("material name not trimmed: %q", sel.Kit.Custom.Materials[0].Name)
		}
	})

	t.Run("no kit", func(t *testing.T) {
		sel := ServiceSelectionRequest{ServiceType: "network", Category: "configuration"}.ToSelection()
		if sel.Kit != nil {
			t.Fatalf("expected nil kit, got %+v", sel.Kit)
		}
	})
}

func TestCreateWorkOrderRequest_ResolveServiceDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		d, err := CreateWorkOrderRequest{ServiceDate: "2025-04-02T09:30:00Z"}.ResolveServiceDate()
		if err != nil || d == nil || d.Format("2006-01-02 15:04") != "2025-04-02 09:30" {
			t.Fatalf("unexpected: %v %v", d, err)
		}
	})

	t.Run("plain day", func(t *testing.T) {
		d, err := CreateWorkOrderRequest{ServiceDate: "2025-04-02"}.ResolveServiceDate()
		if err != nil || d == nil || d.Format("2006-01-02") != "2025-04-02" {
			t.Fatalf("unexpected: %v %v", d, err)
		}
	})

	t.Run("empty is nil", func(t *testing.T) {
		d, err := CreateWorkOrderRequest{ServiceDate: "  "}.ResolveServiceDate()
		if err != nil || d != nil {
			t.Fatalf("unexpected: %v %v", d, err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := CreateWorkOrderRequest{ServiceDate: "pronto"}.ResolveServiceDate()
		if !errors.Is(err, ErrInvalidServiceDate) {
			t.Fatalf("expected ErrInvalidServiceDate, got %v", err)
		}
	})
}

func TestUpdateWorkOrderRequest_ToPatch(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		status := "cancelled"
		_, err := UpdateWorkOrderRequest{Status: &status}.ToPatch()
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("full patch", func(t *testing.T) {
		status := " in-progress "
		obs := "Revisar cableado"
		ids := []string{"t1", "t2"}
		extras := []MaterialRequest{{Name: "Tornillería", Quantity: 2, UnitPrice: decimal.NewFromInt(10)}}
		manual := decimal.NewFromInt(500)

		patch, err := UpdateWorkOrderRequest{
			Status:                 &status,
			TechnicianObservations: &obs,
			AssignedTechnicianIDs:  &ids,
			ExtraMaterials:         &extras,
			ManualTotalAmount:      &manual,
		}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status == nil || *patch.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected status: %+v", patch.Status)
		}
		if patch.TechnicianObservations == nil || *patch.TechnicianObservations != obs {
			t.Fatalf("unexpected observations: %+v", patch.TechnicianObservations)
		}
		if patch.AssignedTechnicianIDs == nil || len(*patch.AssignedTechnicianIDs) != 2 {
			t.Fatalf("unexpected technician ids: %+v", patch.AssignedTechnicianIDs)
		}
		if patch.ExtraMaterials == nil || (*patch.ExtraMaterials)[0].Name != "Tornillería" {
			t.Fatalf("unexpected extras: %+v", patch.ExtraMaterials)
		}
		if patch.ManualTotalAmount == nil || !patch.ManualTotalAmount.Equal(manual) {
			t.Fatalf("unexpected manual total: %+v", patch.ManualTotalAmount)
		}
	})

	t.Run("empty patch leaves everything nil", func(t *testing.T) {
		patch, err := UpdateWorkOrderRequest{}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status != nil || patch.ExtraMaterials != nil || patch.AssignedTechnicianIDs != nil || patch.ManualTotalAmount != nil || patch.ClearManualTotal {
			t.Fatalf("unexpected patch: %+v", patch)
		}
	})
}
