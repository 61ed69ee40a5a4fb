package roster

import (
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Roster is the read-only technician roster loaded at startup. Commission
// percentages differ per technician depending on whether they work an order
// alone or in a group. Roster administration is external to this service.

type Roster struct {
	technicians []entities.Technician
}

var _ interfaces.ITechnicianRoster = (*Roster)(nil)

func New() *Roster {
	return &Roster{
		technicians: []entities.Technician{
			{ID: "t1", Name: "Roberto Sánchez", Specialty: "Cámaras de Seguridad", Phone: "+34 611 222 333", SoloCommission: pct(12), GroupCommission: pct(7), IsAvailable: true},
			{ID: "t2", Name: "Carmen Ruiz", Specialty: "Redes y Conectividad", Phone: "+34 622 333 444", SoloCommission: pct(10), GroupCommission: pct(6), IsAvailable: true},
			{ID: "t3", Name: "Miguel Torres", Specialty: "Servidores", Phone: "+34 633 444 555", SoloCommission: pct(15), GroupCommission: pct(8), IsAvailable: true},
			{ID: "t4", Name: "Laura Fernández", Specialty: "Software", Phone: "+34 644 555 666", SoloCommission: pct(10), GroupCommission: pct(5), IsAvailable: true},
			{ID: "t5", Name: "David Jiménez", Specialty: "Cámaras de Seguridad", Phone: "+34 655 666 777", SoloCommission: pct(12), GroupCommission: pct(7), IsAvailable: false},
		},
	}
}

func (r *Roster) List() []entities.Technician {
	return append([]entities.Technician(nil), r.technicians...)
}

func (r *Roster) GetByID(id string) (entities.Technician, bool) {
	for _, t := range r.technicians {
		if t.ID == id {
			return t, true
		}
	}
	return entities.Technician{}, false
}

func pct(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
