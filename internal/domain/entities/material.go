package entities

import "github.com/shopspring/decimal"

// Material is a billable line item: a named part or task with a quantity and a
// unit price. It appears inside camera kits, inside services and as an extra
// added directly to a work order.
//
// Monetary representation:
//   - UnitPrice is an exact decimal; totals are accumulated with decimal
//     arithmetic, never binary floats.

type Material struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns quantity × unit price.
func (m Material) LineTotal() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// SumLineTotals accumulates the line totals of a materials list.
func SumLineTotals(materials []Material) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.LineTotal())
	}
	return total
}
