package catalog

import (
	"testing"

	"servitec/internal/domain/entities"
)

// The catalog is the pricing authority for kits: the stored total is copied
// into services without recomputation, so it must equal the material sum.
func TestKitTotalsMatchMaterialSums(t *testing.T) {
	c := New()
	kits := c.Kits()
	if len(kits) != 3 {
		t.Fatalf("expected 3 kits, got %d", len(kits))
	}
	for _, kit := range kits {
		t.Run(kit.ID, func(t *testing.T) {
			sum := entities.SumLineTotals(kit.Materials)
			if !sum.Equal(kit.TotalPrice) {
				t.Fatalf("kit %s: stored total %s != material sum %s", kit.ID, kit.TotalPrice, sum)
			}
		})
	}
}

func TestKitReferenceValues(t *testing.T) {
	c := New()

	kit, ok := c.KitByID("kit-4")
	if !ok {
		t.Fatalf("kit-4 missing")
	}
	if kit.TotalPrice.StringFixed(2) != "624.92" {
		t.Fatalf("kit-4 total: %s", kit.TotalPrice)
	}
	if len(kit.Materials) != 5 {
		t.Fatalf("kit-4 materials: %d", len(kit.Materials))
	}
	if kit.CameraCount != 4 {
		t.Fatalf("kit-4 camera count: %d", kit.CameraCount)
	}

	if _, ok := c.KitByID("kit-99"); ok {
		t.Fatalf("expected kit-99 to be absent")
	}
}

func TestCategoriesAndMaintenanceLookup(t *testing.T) {
	c := New()

	if got := len(c.ServiceTypes()); got != 4 {
		t.Fatalf("expected 4 service types, got %d", got)
	}
	if got := len(c.CategoriesFor("cameras")); got != 3 {
		t.Fatalf("expected 3 camera categories, got %d", got)
	}
	if got := len(c.CategoriesFor("unknown")); got != 0 {
		t.Fatalf("expected no categories for unknown type, got %d", got)
	}

	m, ok := c.MaintenanceMaterialByID("mm2")
	if !ok {
		t.Fatalf("mm2 missing")
	}
	if m.UnitPrice.StringFixed(2) != "25.00" {
		t.Fatalf("mm2 price: %s", m.UnitPrice)
	}
	if got := len(c.MaintenanceMaterials()); got != 6 {
		t.Fatalf("expected 6 maintenance materials, got %d", got)
	}
}

// Accessors must hand out copies: mutating a returned kit cannot corrupt the
// catalog.
func TestAccessorsReturnCopies(t *testing.T) {
	c := New()

	kit, _ := c.KitByID("kit-4")
	kit.Materials[0].Quantity = 99

	again, _ := c.KitByID("kit-4")
	if again.Materials[0].Quantity != 4 {
		t.Fatalf("catalog kit mutated through accessor copy")
	}
}
