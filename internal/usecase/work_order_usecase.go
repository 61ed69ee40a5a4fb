package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoCustomer        = errors.New("order requires a customer")
	ErrNoDate            = errors.New("order requires a service date")
	ErrNoServices        = errors.New("order requires at least one service")
	ErrOrderNotFound     = errors.New("work order not found")
	ErrUnknownTechnician = errors.New("technician not found in roster")
	ErrAlreadyAssigned   = errors.New("technician already assigned")
)

// DefaultRemovalReason is recorded when a technician is removed without an
// explicit reason.
const DefaultRemovalReason = "Reasignado"

// UpdateOrderPatch is the atomic field-change set accepted by UpdateOrder. Nil
// pointers mean "leave unchanged". AssignedTechnicianIDs and ExtraMaterials are
// full replacements, not merges.

type UpdateOrderPatch struct {
	Status                 *entities.OrderStatus
	InitialObservations    *string
	TechnicianObservations *string
	AssignedTechnicianIDs  *[]string
	ExtraMaterials         *[]entities.Material
	ManualTotalAmount      *decimal.Decimal
	ClearManualTotal       bool
}

// IWorkOrderUseCase is the order ledger: it owns every WorkOrder and is the
// only mutation path.
//
// Domain notes:
//   - TotalAmount is recomputed unconditionally after every mutation; a manual
//     override never replaces the derived value.
//   - Status transitions are not validated here. The lifecycle is advisory
//     (see entities.OrderStatus.CanTransitionTo).
//   - Every removal of an assigned technician appends exactly one history
//     entry, whichever operation removed it.

type IWorkOrderUseCase interface {
	CreateOrder(ctx context.Context, customer *entities.Customer, serviceDate *time.Time, services []entities.Service, initialObservations string) (entities.WorkOrder, error)
	UpdateOrder(ctx context.Context, orderID string, patch UpdateOrderPatch) (entities.WorkOrder, error)
	AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.WorkOrder, error)
	RemoveTechnician(ctx context.Context, orderID, technicianID, reason string) (entities.WorkOrder, error)
	AddExtraMaterial(ctx context.Context, orderID, name string, quantity int, unitPrice decimal.Decimal) (entities.WorkOrder, error)
	RemoveExtraMaterial(ctx context.Context, orderID, materialID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Technicians() []entities.Technician
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	roster   interfaces.ITechnicianRoster
	notifier interfaces.INotifier
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, roster interfaces.ITechnicianRoster, notifier interfaces.INotifier) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, roster: roster, notifier: notifier}
}

func (u *WorkOrderUseCase) CreateOrder(ctx context.Context, customer *entities.Customer, serviceDate *time.Time, services []entities.Service, initialObservations string) (entities.WorkOrder, error) {
	// Precondition order matters: first failure wins.
	if customer == nil {
		u.notifier.Error(ctx, "Por favor selecciona un cliente")
		return entities.WorkOrder{}, ErrNoCustomer
	}
	if serviceDate == nil {
		u.notifier.Error(ctx, "Por favor selecciona una fecha de servicio")
		return entities.WorkOrder{}, ErrNoDate
	}
	if len(services) == 0 {
		u.notifier.Error(ctx, "Por favor agrega al menos un servicio")
		return entities.WorkOrder{}, ErrNoServices
	}

	o := entities.WorkOrder{
		ID:                  "ORD-" + uuid.NewString(),
		Customer:            customer,
		ServiceDate:         serviceDate,
		Services:            append([]entities.Service(nil), services...),
		ExtraMaterials:      []entities.Material{},
		Status:              entities.OrderStatusPending,
		CreatedAt:           time.Now().UTC(),
		AssignedTechnicians: []entities.AssignedTechnician{},
		TechnicianHistory:   []entities.TechnicianHistoryEntry{},
		InitialObservations: initialObservations,
	}
	o.TotalAmount = o.ComputedTotal()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	u.notifier.Info(ctx, fmt.Sprintf("¡Orden de trabajo creada exitosamente! Cliente: %s | Total: €%s", customer.Name, created.TotalAmount.StringFixed(2)))
	return created, nil
}

func (u *WorkOrderUseCase) UpdateOrder(ctx context.Context, orderID string, patch UpdateOrderPatch) (entities.WorkOrder, error) {
	updated, err := u.mutate(ctx, orderID, func(o *entities.WorkOrder) error {
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.InitialObservations != nil {
			o.InitialObservations = *patch.InitialObservations
		}
		if patch.TechnicianObservations != nil {
			o.TechnicianObservations = *patch.TechnicianObservations
		}
		if patch.AssignedTechnicianIDs != nil {
			if err := u.replaceTechnicians(o, *patch.AssignedTechnicianIDs); err != nil {
				return err
			}
		}
		if patch.ExtraMaterials != nil {
			materials := append([]entities.Material{}, *patch.ExtraMaterials...)
			for i := range materials {
				if materials[i].ID == "" {
					materials[i].ID = uuid.NewString()
				}
			}
			o.ExtraMaterials = materials
		}
		if patch.ClearManualTotal {
			o.ManualTotalAmount = nil
		} else if patch.ManualTotalAmount != nil {
			m := *patch.ManualTotalAmount
			o.ManualTotalAmount = &m
		}
		return nil
	})
	if err != nil {
		u.notifyMutationError(ctx, err)
		return entities.WorkOrder{}, err
	}
	u.notifier.Info(ctx, fmt.Sprintf("Orden %s actualizada", updated.ID))
	return updated, nil
}

// replaceTechnicians applies a full-replacement assignment set. Retained
// technicians keep their original snapshot and assignment instant; dropped ones
// get a history entry so the append-only audit trail covers every removal path.
func (u *WorkOrderUseCase) replaceTechnicians(o *entities.WorkOrder, technicianIDs []string) error {
	now := time.Now().UTC()
	next := make([]entities.AssignedTechnician, 0, len(technicianIDs))
	keep := make(map[string]bool, len(technicianIDs))
	for _, id := range technicianIDs {
		if keep[id] {
			continue
		}
		keep[id] = true
		if idx := o.TechnicianIndex(id); idx >= 0 {
			next = append(next, o.AssignedTechnicians[idx])
			continue
		}
		tech, ok := u.roster.GetByID(id)
		if !ok {
			return ErrUnknownTechnician
		}
		next = append(next, entities.AssignedTechnician{Technician: tech, AssignedAt: now})
	}
	for _, at := range o.AssignedTechnicians {
		if !keep[at.Technician.ID] {
			o.TechnicianHistory = append(o.TechnicianHistory, historyEntry(at, now, DefaultRemovalReason))
		}
	}
	o.AssignedTechnicians = next
	return nil
}

func (u *WorkOrderUseCase) AssignTechnician(ctx context.Context, orderID, technicianID string) (entities.WorkOrder, error) {
	tech, ok := u.roster.GetByID(technicianID)
	if !ok {
		u.notifier.Error(ctx, "El técnico no existe en la plantilla")
		return entities.WorkOrder{}, ErrUnknownTechnician
	}

	updated, err := u.mutate(ctx, orderID, func(o *entities.WorkOrder) error {
		if o.TechnicianIndex(technicianID) >= 0 {
			return ErrAlreadyAssigned
		}
		o.AssignedTechnicians = append(o.AssignedTechnicians, entities.AssignedTechnician{
			Technician: tech,
			AssignedAt: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		u.notifyMutationError(ctx, err)
		return entities.WorkOrder{}, err
	}
	u.notifier.Info(ctx, fmt.Sprintf("Técnico %s asignado a la orden", tech.Name))
	return updated, nil
}

func (u *WorkOrderUseCase) RemoveTechnician(ctx context.Context, orderID, technicianID, reason string) (entities.WorkOrder, error) {
	if strings.TrimSpace(reason) == "" {
		reason = DefaultRemovalReason
	}

	removed := false
	updated, err := u.mutate(ctx, orderID, func(o *entities.WorkOrder) error {
		idx := o.TechnicianIndex(technicianID)
		if idx < 0 {
			// Not assigned: nothing to remove, nothing to record.
			return nil
		}
		at := o.AssignedTechnicians[idx]
		o.AssignedTechnicians = append(o.AssignedTechnicians[:idx], o.AssignedTechnicians[idx+1:]...)
		o.TechnicianHistory = append(o.TechnicianHistory, historyEntry(at, time.Now().UTC(), reason))
		removed = true
		return nil
	})
	if err != nil {
		u.notifyMutationError(ctx, err)
		return entities.WorkOrder{}, err
	}
	if removed {
		u.notifier.Info(ctx, fmt.Sprintf("Técnico removido de la orden %s: %s", updated.ID, reason))
	}
	return updated, nil
}

func (u *WorkOrderUseCase) AddExtraMaterial(ctx context.Context, orderID, name string, quantity int, unitPrice decimal.Decimal) (entities.WorkOrder, error) {
	if strings.TrimSpace(name) == "" || quantity < 1 || unitPrice.IsNegative() {
		u.notifier.Error(ctx, "Por favor completa nombre, cantidad y precio del material")
		return entities.WorkOrder{}, ErrIncompleteMaterial
	}

	material := entities.Material{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	updated, err := u.mutate(ctx, orderID, func(o *entities.WorkOrder) error {
		o.ExtraMaterials = append(o.ExtraMaterials, material)
		return nil
	})
	if err != nil {
		u.notifyMutationError(ctx, err)
		return entities.WorkOrder{}, err
	}
	u.notifier.Info(ctx, fmt.Sprintf("Material %s agregado a la orden", material.Name))
	return updated, nil
}

func (u *WorkOrderUseCase) RemoveExtraMaterial(ctx context.Context, orderID, materialID string) (entities.WorkOrder, error) {
	updated, err := u.mutate(ctx, orderID, func(o *entities.WorkOrder) error {
		for i, m := range o.ExtraMaterials {
			if m.ID == materialID {
				o.ExtraMaterials = append(o.ExtraMaterials[:i], o.ExtraMaterials[i+1:]...)
				return nil
			}
		}
		// Removing an absent material is a safe no-op.
		return nil
	})
	if err != nil {
		u.notifyMutationError(ctx, err)
		return entities.WorkOrder{}, err
	}
	u.notifier.Info(ctx, "Material eliminado")
	return updated, nil
}

// mutate runs fn atomically against the order and recomputes the derived total
// afterwards. The recompute is unconditional: a manual override is a display
// hint, never a replacement for the stored computed value.
func (u *WorkOrderUseCase) mutate(ctx context.Context, orderID string, fn func(*entities.WorkOrder) error) (entities.WorkOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}

	updated, err := u.repo.Update(ctx, orderID, func(o *entities.WorkOrder) error {
		if err := fn(o); err != nil {
			return err
		}
		o.TotalAmount = o.ComputedTotal()
		return nil
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) Technicians() []entities.Technician {
	return u.roster.List()
}

func (u *WorkOrderUseCase) notifyMutationError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		u.notifier.Error(ctx, "La orden de trabajo no existe")
	case errors.Is(err, ErrAlreadyAssigned):
		u.notifier.Error(ctx, "El técnico ya está asignado a la orden")
	case errors.Is(err, ErrUnknownTechnician):
		u.notifier.Error(ctx, "El técnico no existe en la plantilla")
	default:
		u.notifier.Error(ctx, err.Error())
	}
}

func historyEntry(at entities.AssignedTechnician, removedAt time.Time, reason string) entities.TechnicianHistoryEntry {
	return entities.TechnicianHistoryEntry{
		ID:            uuid.NewString(),
		Technician:    at.Technician,
		AssignedAt:    at.AssignedAt,
		RemovedAt:     removedAt,
		RemovedReason: reason,
	}
}
