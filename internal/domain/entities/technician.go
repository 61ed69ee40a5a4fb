package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Technician is roster reference data. Orders never hold a live reference to a
// roster entry: assignment and history both store a value snapshot, so later
// roster edits cannot rewrite what an order recorded.

type Technician struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Specialty       string          `json:"specialty"`
	Phone           string          `json:"phone"`
	SoloCommission  decimal.Decimal `json:"solo_commission"`
	GroupCommission decimal.Decimal `json:"group_commission"`
	IsAvailable     bool            `json:"is_available"`
}

// AssignedTechnician is a technician snapshot currently attached to an order,
// together with the instant it was assigned. AssignedAt feeds the history entry
// written when the technician is later removed.

type AssignedTechnician struct {
	Technician Technician `json:"technician"`
	AssignedAt time.Time  `json:"assigned_at"`
}

// TechnicianHistoryEntry records one assignment-and-removal cycle. The history
// list on an order is append-only; it never shrinks.

type TechnicianHistoryEntry struct {
	ID            string     `json:"id"`
	Technician    Technician `json:"technician"`
	AssignedAt    time.Time  `json:"assigned_at"`
	RemovedAt     time.Time  `json:"removed_at"`
	RemovedReason string     `json:"removed_reason"`
}
