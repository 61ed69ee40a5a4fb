package response

import "servitec/internal/domain/entities"

type ServiceTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromServiceTypes(in []entities.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(in))
	for _, t := range in {
		out = append(out, ServiceTypeResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

type ServiceCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromServiceCategories(in []entities.ServiceCategory) []ServiceCategoryResponse {
	out := make([]ServiceCategoryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, ServiceCategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

type CameraKitResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	CameraCount int                `json:"camera_count"`
	Materials   []MaterialResponse `json:"materials"`
	TotalPrice  string             `json:"total_price"`
}

func FromCameraKit(k entities.CameraKit) CameraKitResponse {
	return CameraKitResponse{
		ID:          k.ID,
		Name:        k.Name,
		CameraCount: k.CameraCount,
		Materials:   fromMaterials(k.Materials),
		TotalPrice:  k.TotalPrice.StringFixed(2),
	}
}

func FromCameraKits(in []entities.CameraKit) []CameraKitResponse {
	out := make([]CameraKitResponse, 0, len(in))
	for _, k := range in {
		out = append(out, FromCameraKit(k))
	}
	return out
}

func FromMaintenanceMaterials(in []entities.Material) []MaterialResponse {
	return fromMaterials(in)
}
