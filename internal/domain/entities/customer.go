package entities

// Customer identifies who a work order is for. Customers are reference data
// managed outside this service; orders keep a value copy.

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
