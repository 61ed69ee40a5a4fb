package repository

import (
	"context"
	"sync"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"
)

// WorkOrderMemoryRepository keeps the order ledger's state in process memory.
// Persistence is out of scope for this service; the repository still sits
// behind the usecase port so the ledger never depends on the storage choice.
//
// Concurrency model:
//   - one mutex serializes every mutation, so each Update is atomic against
//     its order and two concurrent technician assignments cannot race;
//   - reads and writes exchange deep clones, so a caller can never alias
//     ledger state.

type WorkOrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.WorkOrder
	ids    []string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

func NewWorkOrderMemoryRepository() *WorkOrderMemoryRepository {
	return &WorkOrderMemoryRepository{orders: make(map[string]entities.WorkOrder)}
}

func (r *WorkOrderMemoryRepository) Create(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; !exists {
		r.ids = append(r.ids, o.ID)
	}
	r.orders[o.ID] = o.Clone()
	return o, nil
}

// GetByID returns a zero-value order (empty ID) when nothing matches, matching
// the repository convention the use cases map onto their not-found errors.
func (r *WorkOrderMemoryRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	return o.Clone(), nil
}

// List returns orders in creation order.
func (r *WorkOrderMemoryRepository) List(_ context.Context) ([]entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.WorkOrder, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.orders[id].Clone())
	}
	return out, nil
}

// Update applies mutate to a working copy under the lock and commits it only
// when mutate succeeds, so a failed mutation leaves the stored order untouched.
func (r *WorkOrderMemoryRepository) Update(_ context.Context, id string, mutate func(*entities.WorkOrder) error) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}

	working := stored.Clone()
	if err := mutate(&working); err != nil {
		return entities.WorkOrder{}, err
	}

	r.orders[id] = working.Clone()
	return working, nil
}
