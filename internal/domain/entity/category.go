package entity

import "cmp"

// Category representa una categoría del catálogo.
type Category struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *Category) DocumentID() string      { return c.ID }
func (c *Category) SetDocumentID(id string) { c.ID = id }

// Merge devuelve una nueva categoría con los campos presentes en patch aplicados sobre c.
// El ID siempre se conserva; un campo vacío en patch se considera ausente.
func (c Category) Merge(patch Category) Category {
	return Category{
		ID:          c.ID,
		Description: cmp.Or(patch.Description, c.Description),
	}
}
