package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle stage of a work order.
//
// Domain notes:
//   - The canonical ordering is pending → in-progress → paused → completed.
//   - The ledger does not enforce the ordering: any status may follow any
//     other, matching the dispatcher workflow this service replaced. Callers
//     that want a guarded machine must check CanTransitionTo before committing
//     a change.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusPaused     OrderStatus = "paused"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusInProgress: 1,
	OrderStatusPaused:     2,
	OrderStatusCompleted:  3,
}

// IsValid reports whether s is one of the known lifecycle stages.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to next follows the canonical
// forward-only ordering. Advisory: the ledger accepts any transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, okFrom := orderStatusRank[s]
	to, okTo := orderStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to == from || to == from+1
}

// WorkOrder is the order aggregate owned by the ledger.
//
// Totals:
//   - TotalAmount is always the derived sum of service totals plus extra
//     material line totals. It is recomputed after every mutation.
//   - ManualTotalAmount is an optional dispatcher override used for display and
//     invoicing. It never replaces the derived value; EffectiveTotal resolves
//     the two.

type WorkOrder struct {
	ID          string     `json:"id"`
	Customer    *Customer  `json:"customer"`
	ServiceDate *time.Time `json:"service_date"`
	Services    []Service  `json:"services"`

	ExtraMaterials    []Material       `json:"extra_materials"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	ManualTotalAmount *decimal.Decimal `json:"manual_total_amount,omitempty"`

	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`

	AssignedTechnicians []AssignedTechnician     `json:"assigned_technicians"`
	TechnicianHistory   []TechnicianHistoryEntry `json:"technician_history"`

	InitialObservations    string `json:"initial_observations"`
	TechnicianObservations string `json:"technician_observations"`
}

// ComputedTotal returns the derived total: service totals plus extra material
// line totals.
func (o WorkOrder) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range o.Services {
		total = total.Add(s.TotalPrice)
	}
	return total.Add(SumLineTotals(o.ExtraMaterials))
}

// EffectiveTotal returns the displayed/invoiced total: the manual override when
// present, otherwise the derived TotalAmount.
func (o WorkOrder) EffectiveTotal() decimal.Decimal {
	if o.ManualTotalAmount != nil {
		return *o.ManualTotalAmount
	}
	return o.TotalAmount
}

// TechnicianIndex returns the position of technicianID in the assigned set, or
// -1 when not assigned.
func (o WorkOrder) TechnicianIndex(technicianID string) int {
	for i, at := range o.AssignedTechnicians {
		if at.Technician.ID == technicianID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the order. The store hands out clones so callers
// can never mutate ledger state behind the ledger's back.
func (o WorkOrder) Clone() WorkOrder {
	out := o
	if o.Customer != nil {
		c := *o.Customer
		out.Customer = &c
	}
	if o.ServiceDate != nil {
		d := *o.ServiceDate
		out.ServiceDate = &d
	}
	if o.ManualTotalAmount != nil {
		m := *o.ManualTotalAmount
		out.ManualTotalAmount = &m
	}
	out.Services = cloneServices(o.Services)
	out.ExtraMaterials = append([]Material(nil), o.ExtraMaterials...)
	out.AssignedTechnicians = append([]AssignedTechnician(nil), o.AssignedTechnicians...)
	out.TechnicianHistory = append([]TechnicianHistoryEntry(nil), o.TechnicianHistory...)
	return out
}

func cloneServices(services []Service) []Service {
	if services == nil {
		return nil
	}
	out := make([]Service, len(services))
	for i, s := range services {
		s.Materials = append([]Material(nil), s.Materials...)
		out[i] = s
	}
	return out
}
