package dto

// VendorRequest entrada para crear, reemplazar o parchear un proveedor.
type VendorRequest struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// VendorResponse salida de un proveedor persistido.
type VendorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
