package entities

// ServiceType is a top-level entry in the service taxonomy (cameras, network,
// servers, software).

type ServiceType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceCategory is a category valid under a given service type.

type ServiceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
