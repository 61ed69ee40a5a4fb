package interfaces

import (
	"context"

	"servitec/internal/domain/entities"
)

// IWorkOrderRepository abstracts the in-memory work-order store.
//
// Conventions:
//   - Lookups return a zero-value WorkOrder (empty ID) when nothing matches;
//     the use case maps that to its not-found error.
//   - Update applies mutate under the store's lock, so every ledger mutation is
//     atomic against its order. When mutate returns an error the order is left
//     untouched and the error is surfaced as-is.

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Update(ctx context.Context, id string, mutate func(*entities.WorkOrder) error) (entities.WorkOrder, error)
}
