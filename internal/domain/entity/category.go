package entity

import "time"

// Estados válidos para Category.
const (
	CategoryStatusActivo   = "Activo"
	CategoryStatusInactivo = "Inactivo"
)

// Category representa una categoría de productos (ej. "Camisetas", "Tenis").
// Tallas define las tallas admitidas por los productos de la categoría; vacío = talla única.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"` // único
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl"`
	Tallas      []string  `json:"tallas"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefinesTalla indica si la categoría admite la talla dada.
func (c *Category) DefinesTalla(talla string) bool {
	for _, t := range c.Tallas {
		if t == talla {
			return true
		}
	}
	return false
}
