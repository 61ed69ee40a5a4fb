package interfaces

import "servitec/internal/domain/entities"

// ICatalog exposes the read-only service catalog supplied at startup: the
// service taxonomy, the pre-priced camera kits and the maintenance checklist
// materials.

type ICatalog interface {
	ServiceTypes() []entities.ServiceType
	CategoriesFor(serviceTypeID string) []entities.ServiceCategory
	Kits() []entities.CameraKit
	KitByID(id string) (entities.CameraKit, bool)
	MaintenanceMaterials() []entities.Material
	MaintenanceMaterialByID(id string) (entities.Material, bool)
}
