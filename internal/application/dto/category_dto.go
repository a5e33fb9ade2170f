package dto

// CategoryRequest entrada para crear, reemplazar o parchear una categoría.
// Los campos vacíos se omiten: en un PATCH equivalen a "no modificar".
type CategoryRequest struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse salida de una categoría persistida.
type CategoryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}
