package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Géneros válidos para Product.
const (
	GeneroHombre = "Hombre"
	GeneroMujer  = "Mujer"
	GeneroUnisex = "Unisex"
)

// Estados válidos para Product (en minúsculas, a diferencia de Category).
const (
	ProductStatusActivo   = "activo"
	ProductStatusInactivo = "inactivo"
)

// Product representa una prenda o calzado del catálogo.
// Referencia a su categoría por ID (clave foránea), no por nombre.
// El stock se lleva por talla; Images es una lista ordenada y la primera es la principal.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"` // único (sin distinguir mayúsculas) entre activos e inactivos
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"` // cero si no hay descuento
	CategoryID    string          `json:"categoryId"`
	Genero        string          `json:"genero"`
	StockPorTalla map[string]int  `json:"stockPorTalla"`
	Images        []string        `json:"images"`
	Status        string          `json:"status"`
	Rating        float64         `json:"rating"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PrimaryImage devuelve la imagen principal (la primera) o vacío.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// StockTotal suma el stock de todas las tallas.
func (p *Product) StockTotal() int {
	total := 0
	for _, n := range p.StockPorTalla {
		total += n
	}
	return total
}
