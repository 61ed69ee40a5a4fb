package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"servitec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func newOrder(id string) entities.WorkOrder {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return entities.WorkOrder{
		ID:          id,
		Customer:    &entities.Customer{ID: "1", Name: "Juan Pérez"},
		ServiceDate: &date,
		Services: []entities.Service{
			{ID: "svc-1", ServiceType: "cameras", Category: "installation", TotalPrice: decimal.RequireFromString("624.92")},
		},
		ExtraMaterials: []entities.Material{},
		Status:         entities.OrderStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestCreateAndGetByID(t *testing.T) {
	r := NewWorkOrderMemoryRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, newOrder("ORD-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "ORD-1" {
		t.Fatalf("unexpected id: %s", created.ID)
	}

	got, err := r.GetByID(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "ORD-1" || len(got.Services) != 1 {
		t.Fatalf("unexpected order: %+v", got)
	}

	missing, err := r.GetByID(ctx, "ORD-404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero order, got %+v", missing)
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	r := NewWorkOrderMemoryRepository()
	ctx := context.Background()

	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		if _, err := r.Create(ctx, newOrder(id)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	orders, err := r.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		if orders[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, orders[i].ID)
		}
	}
}

func TestUpdateCommitsOnlyOnSuccess(t *testing.T) {
	r := NewWorkOrderMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, newOrder("ORD-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success commits", func(t *testing.T) {
		updated, err := r.Update(ctx, "ORD-1", func(o *entities.WorkOrder) error {
			o.Status = entities.OrderStatusInProgress
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected status: %s", updated.Status)
		}

		got, _ := r.GetByID(ctx, "ORD-1")
		if got.Status != entities.OrderStatusInProgress {
			t.Fatalf("update not committed: %s", got.Status)
		}
	})

	t.Run("mutate error leaves order untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := r.Update(ctx, "ORD-1", func(o *entities.WorkOrder) error {
			o.Status = entities.OrderStatusCompleted
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		got, _ := r.GetByID(ctx, "ORD-1")
		if got.Status != entities.OrderStatusInProgress {
			t.Fatalf("failed update leaked: %s", got.Status)
		}
	})

	t.Run("unknown id returns zero order", func(t *testing.T) {
		got, err := r.Update(ctx, "ORD-404", func(o *entities.WorkOrder) error { return nil })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero order, got %+v", got)
		}
	})
}

// Clones must isolate callers from the store: mutating a returned order cannot
// change what the repository holds.
func TestReadsReturnClones(t *testing.T) {
	r := NewWorkOrderMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, newOrder("ORD-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := r.GetByID(ctx, "ORD-1")
	got.Services[0].TotalPrice = decimal.Zero
	got.Customer.Name = "hacked"

	again, _ := r.GetByID(ctx, "ORD-1")
	if again.Services[0].TotalPrice.StringFixed(2) != "624.92" {
		t.Fatalf("service mutated through clone")
	}
	if again.Customer.Name != "Juan Pérez" {
		t.Fatalf("customer mutated through clone")
	}
}
