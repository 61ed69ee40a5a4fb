package interfaces

import "servitec/internal/domain/entities"

// ITechnicianRoster exposes the read-only technician roster. Roster
// administration lives outside this service.

type ITechnicianRoster interface {
	List() []entities.Technician
	GetByID(id string) (entities.Technician, bool)
}
