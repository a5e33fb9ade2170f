package entity

import "cmp"

// Vendor representa un proveedor.
type Vendor struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (v *Vendor) DocumentID() string      { return v.ID }
func (v *Vendor) SetDocumentID(id string) { v.ID = id }

// Merge devuelve un nuevo proveedor con los campos presentes en patch aplicados sobre v.
func (v Vendor) Merge(patch Vendor) Vendor {
	return Vendor{
		ID:        v.ID,
		FirstName: cmp.Or(patch.FirstName, v.FirstName),
		LastName:  cmp.Or(patch.LastName, v.LastName),
	}
}
