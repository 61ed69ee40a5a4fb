package usecase

import (
	"context"
	"errors"
	"strings"

	"servitec/internal/domain/entities"
	"servitec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingSelection       = errors.New("service type, category or kit not selected")
	ErrUnknownKit             = errors.New("camera kit not found")
	ErrIncompleteCustomConfig = errors.New("incomplete custom camera configuration")
	ErrEmptySelection         = errors.New("no maintenance materials selected")
	ErrIncompleteMaterial     = errors.New("material missing name, quantity or price")
)

// KitSelection says how a camera installation is configured: either a catalog
// kit by id, or an ad-hoc custom configuration. Exactly one of the two fields
// is set. This replaces the legacy "custom" sentinel id.

type KitSelection struct {
	FixedKitID string
	Custom     *CustomKitConfig
}

// CustomKitConfig is a dispatcher-defined installation: how many cameras and
// which materials, priced from scratch since no catalog authority exists for
// ad-hoc configurations.

type CustomKitConfig struct {
	CameraCount int
	Materials   []entities.Material
}

// ServiceSelection is the resolver input. Kit is only meaningful for camera
// installations; MaintenanceMaterialIDs only for maintenance categories.

type ServiceSelection struct {
	ServiceType            string
	Category               string
	Kit                    *KitSelection
	MaintenanceMaterialIDs []string
}

// IServiceCatalogUseCase resolves a dispatcher's selection into a priced
// Service and exposes the catalog reference data behind it.
//
// Pricing paths, selected by (service type, category):
//   - cameras/installation with a catalog kit: materials and total copied from
//     the kit (the catalog owns kit pricing);
//   - cameras/installation with a custom configuration: total computed from the
//     given materials;
//   - any type with the maintenance category: total computed from the selected
//     maintenance materials;
//   - every other valid combination: empty materials, zero total.

type IServiceCatalogUseCase interface {
	ResolveService(ctx context.Context, sel ServiceSelection) (entities.Service, error)
	ServiceTypes() []entities.ServiceType
	CategoriesFor(serviceTypeID string) []entities.ServiceCategory
	Kits() []entities.CameraKit
	MaintenanceMaterials() []entities.Material
}

type ServiceCatalogUseCase struct {
	catalog  interfaces.ICatalog
	notifier interfaces.INotifier
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(catalog interfaces.ICatalog, notifier interfaces.INotifier) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{catalog: catalog, notifier: notifier}
}

func (u *ServiceCatalogUseCase) ResolveService(ctx context.Context, sel ServiceSelection) (entities.Service, error) {
	svc, err := u.resolve(sel)
	if err != nil {
		u.notifyResolveError(ctx, err)
		return entities.Service{}, err
	}
	u.notifier.Info(ctx, "Servicio agregado correctamente")
	return svc, nil
}

func (u *ServiceCatalogUseCase) resolve(sel ServiceSelection) (entities.Service, error) {
	serviceType := strings.TrimSpace(sel.ServiceType)
	category := strings.TrimSpace(sel.Category)
	if serviceType == "" || category == "" {
		return entities.Service{}, ErrMissingSelection
	}
	if !u.categoryExists(serviceType, category) {
		return entities.Service{}, ErrMissingSelection
	}

	svc := entities.Service{
		ID:          uuid.NewString(),
		ServiceType: serviceType,
		Category:    category,
		Materials:   []entities.Material{},
	}

	switch {
	case serviceType == "cameras" && category == "installation":
		return u.resolveCameraInstallation(svc, sel.Kit)
	case category == "maintenance":
		return u.resolveMaintenance(svc, sel.MaintenanceMaterialIDs)
	default:
		// No special configuration required (network configuration, software
		// support, ...): the service carries no materials and no price.
		return svc, nil
	}
}

func (u *ServiceCatalogUseCase) resolveCameraInstallation(svc entities.Service, kit *KitSelection) (entities.Service, error) {
	if kit == nil {
		return entities.Service{}, ErrMissingSelection
	}

	if kit.Custom != nil {
		cfg := kit.Custom
		if cfg.CameraCount < 1 || len(cfg.Materials) == 0 {
			return entities.Service{}, ErrIncompleteCustomConfig
		}
		materials := make([]entities.Material, 0, len(cfg.Materials))
		for _, m := range cfg.Materials {
			if err := validateMaterial(m); err != nil {
				return entities.Service{}, err
			}
			if m.ID == "" {
				m.ID = uuid.NewString()
			}
			materials = append(materials, m)
		}
		svc.CustomCameraCount = cfg.CameraCount
		svc.Materials = materials
		svc.TotalPrice = entities.SumLineTotals(materials)
		return svc, nil
	}

	if strings.TrimSpace(kit.FixedKitID) == "" {
		return entities.Service{}, ErrMissingSelection
	}
	catalogKit, ok := u.catalog.KitByID(kit.FixedKitID)
	if !ok {
		return entities.Service{}, ErrUnknownKit
	}
	svc.KitID = catalogKit.ID
	svc.Materials = append([]entities.Material(nil), catalogKit.Materials...)
	// Copied, not recomputed: the catalog's stored kit price is authoritative.
	svc.TotalPrice = catalogKit.TotalPrice
	return svc, nil
}

func (u *ServiceCatalogUseCase) resolveMaintenance(svc entities.Service, materialIDs []string) (entities.Service, error) {
	materials := make([]entities.Material, 0, len(materialIDs))
	seen := make(map[string]bool, len(materialIDs))
	for _, id := range materialIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m, ok := u.catalog.MaintenanceMaterialByID(id); ok {
			materials = append(materials, m)
		}
	}
	if len(materials) == 0 {
		return entities.Service{}, ErrEmptySelection
	}
	svc.Materials = materials
	svc.TotalPrice = entities.SumLineTotals(materials)
	return svc, nil
}

func (u *ServiceCatalogUseCase) categoryExists(serviceTypeID, categoryID string) bool {
	for _, c := range u.catalog.CategoriesFor(serviceTypeID) {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

func validateMaterial(m entities.Material) error {
	if strings.TrimSpace(m.Name) == "" || m.Quantity < 1 || m.UnitPrice.IsNegative() {
		return ErrIncompleteMaterial
	}
	return nil
}

func (u *ServiceCatalogUseCase) notifyResolveError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingSelection):
		u.notifier.Error(ctx, "Por favor selecciona tipo de servicio, categoría y kit")
	case errors.Is(err, ErrUnknownKit):
		u.notifier.Error(ctx, "El kit seleccionado no existe en el catálogo")
	case errors.Is(err, ErrIncompleteCustomConfig), errors.Is(err, ErrIncompleteMaterial):
		u.notifier.Error(ctx, "Por favor completa la configuración personalizada")
	case errors.Is(err, ErrEmptySelection):
		u.notifier.Error(ctx, "Por favor selecciona al menos un material de mantenimiento")
	default:
		u.notifier.Error(ctx, err.Error())
	}
}

func (u *ServiceCatalogUseCase) ServiceTypes() []entities.ServiceType {
	return u.catalog.ServiceTypes()
}

func (u *ServiceCatalogUseCase) CategoriesFor(serviceTypeID string) []entities.ServiceCategory {
	return u.catalog.CategoriesFor(serviceTypeID)
}

func (u *ServiceCatalogUseCase) Kits() []entities.CameraKit {
	return u.catalog.Kits()
}

func (u *ServiceCatalogUseCase) MaintenanceMaterials() []entities.Material {
	return u.catalog.MaintenanceMaterials()
}
