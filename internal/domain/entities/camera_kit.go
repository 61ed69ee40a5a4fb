package entities

import "github.com/shopspring/decimal"

// CameraKit is catalog reference data: a pre-priced bundle of materials for a
// standard camera-count installation.
//
// TotalPrice is stored, not derived. The catalog is the pricing authority for
// kits, so services built from a kit copy this value instead of recomputing it.
// The stored value must still equal the material sum; that is a data-integrity
// invariant checked by the catalog tests, not at runtime.

type CameraKit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CameraCount int             `json:"camera_count"`
	Materials   []Material      `json:"materials"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
