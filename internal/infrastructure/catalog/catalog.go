package catalog

import (
	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Catalog is the static service catalog supplied at startup: service taxonomy,
// pre-priced camera kits and the maintenance checklist. It is read-only; all
// accessors hand out copies.
//
// Data integrity: every kit's stored TotalPrice equals the sum of its material
// line totals. The stored value stays authoritative at runtime (kit services
// copy it instead of recomputing), so the equality is verified by tests here.

type Catalog struct {
	serviceTypes []entities.ServiceType
	categories   map[string][]entities.ServiceCategory
	kits         []entities.CameraKit
	maintenance  []entities.Material
}

var _ interfaces.ICatalog = (*Catalog)(nil)

func New() *Catalog {
	return &Catalog{
		serviceTypes: []entities.ServiceType{
			{ID: "cameras", Name: "Cámaras de Seguridad"},
			{ID: "network", Name: "Redes y Conectividad"},
			{ID: "servers", Name: "Servidores"},
			{ID: "software", Name: "Software"},
		},
		categories: map[string][]entities.ServiceCategory{
			"cameras": {
				{ID: "installation", Name: "Instalación"},
				{ID: "maintenance", Name: "Mantenimiento"},
				{ID: "repair", Name: "Reparación"},
			},
			"network": {
				{ID: "installation", Name: "Instalación"},
				{ID: "configuration", Name: "Configuración"},
				{ID: "maintenance", Name: "Mantenimiento"},
			},
			"servers": {
				{ID: "installation", Name: "Instalación"},
				{ID: "maintenance", Name: "Mantenimiento"},
				{ID: "upgrade", Name: "Actualización"},
			},
			"software": {
				{ID: "installation", Name: "Instalación"},
				{ID: "update", Name: "Actualización"},
				{ID: "support", Name: "Soporte Técnico"},
			},
		},
		kits: []entities.CameraKit{
			{
				ID:          "kit-4",
				Name:        "Kit 4 Cámaras",
				CameraCount: 4,
				Materials: []entities.Material{
					{ID: "m1", Name: "Cámara IP 1080p", Quantity: 4, UnitPrice: price("89.99")},
					{ID: "m2", Name: "DVR 4 canales", Quantity: 1, UnitPrice: price("149.99")},
					{ID: "m3", Name: "Cable coaxial 100m", Quantity: 1, UnitPrice: price("64.98")},
					{ID: "m4", Name: "Fuente alimentación", Quantity: 1, UnitPrice: price("29.99")},
					{ID: "m5", Name: "Conectores BNC", Quantity: 8, UnitPrice: price("2.50")},
				},
				TotalPrice: price("624.92"),
			},
			{
				ID:          "kit-8",
				Name:        "Kit 8 Cámaras",
				CameraCount: 8,
				Materials: []entities.Material{
					{ID: "m1", Name: "Cámara IP 1080p", Quantity: 8, UnitPrice: price("89.99")},
					{ID: "m6", Name: "DVR 8 canales", Quantity: 1, UnitPrice: price("419.98")},
					{ID: "m7", Name: "Cable coaxial 200m", Quantity: 1, UnitPrice: price("85.00")},
					{ID: "m4", Name: "Fuente alimentación", Quantity: 2, UnitPrice: price("29.99")},
					{ID: "m5", Name: "Conectores BNC", Quantity: 16, UnitPrice: price("2.50")},
				},
				TotalPrice: price("1324.88"),
			},
			{
				ID:          "kit-10",
				Name:        "Kit 10 Cámaras",
				CameraCount: 10,
				Materials: []entities.Material{
					{ID: "m1", Name: "Cámara IP 1080p", Quantity: 10, UnitPrice: price("89.99")},
					{ID: "m8", Name: "DVR 16 canales", Quantity: 1, UnitPrice: price("560.00")},
					{ID: "m9", Name: "Cable coaxial 250m", Quantity: 1, UnitPrice: price("105.00")},
					{ID: "m4", Name: "Fuente alimentación", Quantity: 3, UnitPrice: price("29.99")},
					{ID: "m5", Name: "Conectores BNC", Quantity: 20, UnitPrice: price("2.50")},
				},
				TotalPrice: price("1704.87"),
			},
		},
		maintenance: []entities.Material{
			{ID: "mm1", Name: "Limpieza de lentes", Quantity: 1, UnitPrice: price("15.00")},
			{ID: "mm2", Name: "Ajuste de ángulos", Quantity: 1, UnitPrice: price("25.00")},
			{ID: "mm3", Name: "Revisión de cables", Quantity: 1, UnitPrice: price("35.00")},
			{ID: "mm4", Name: "Actualización firmware", Quantity: 1, UnitPrice: price("45.00")},
			{ID: "mm5", Name: "Reemplazo de conectores", Quantity: 1, UnitPrice: price("20.00")},
			{ID: "mm6", Name: "Prueba de grabación", Quantity: 1, UnitPrice: price("30.00")},
		},
	}
}

func (c *Catalog) ServiceTypes() []entities.ServiceType {
	return append([]entities.ServiceType(nil), c.serviceTypes...)
}

func (c *Catalog) CategoriesFor(serviceTypeID string) []entities.ServiceCategory {
	return append([]entities.ServiceCategory(nil), c.categories[serviceTypeID]...)
}

func (c *Catalog) Kits() []entities.CameraKit {
	out := make([]entities.CameraKit, len(c.kits))
	for i, k := range c.kits {
		k.Materials = append([]entities.Material(nil), k.Materials...)
		out[i] = k
	}
	return out
}

func (c *Catalog) KitByID(id string) (entities.CameraKit, bool) {
	for _, k := range c.kits {
		if k.ID == id {
			k.Materials = append([]entities.Material(nil), k.Materials...)
			return k, true
		}
	}
	return entities.CameraKit{}, false
}

func (c *Catalog) MaintenanceMaterials() []entities.Material {
	return append([]entities.Material(nil), c.maintenance...)
}

func (c *Catalog) MaintenanceMaterialByID(id string) (entities.Material, bool) {
	for _, m := range c.maintenance {
		if m.ID == id {
			return m, true
		}
	}
	return entities.Material{}, false
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
