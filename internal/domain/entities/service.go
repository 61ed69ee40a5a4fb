package entities

import "github.com/shopspring/decimal"

// Service is a priced unit of work attached to an order: an installation built
// from a kit, an ad-hoc custom configuration, a maintenance checklist, or a
// zero-priced service that needs no material configuration.
//
// A Service is immutable once added to an order; it is removed wholesale, never
// edited in place.
//
// Pricing rule:
//   - kit-based services copy the kit's authoritative TotalPrice;
//   - every other path satisfies TotalPrice == sum(materials line totals).

type Service struct {
	ID          string `json:"id"`
	ServiceType string `json:"service_type"`
	Category    string `json:"category"`

	// KitID is set only for kit-based camera installations.
	KitID string `json:"kit_id,omitempty"`
	// CustomCameraCount is set only for custom camera installations.
	CustomCameraCount int `json:"custom_camera_count,omitempty"`

	Materials  []Material      `json:"materials"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
