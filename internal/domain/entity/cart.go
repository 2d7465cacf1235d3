package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem es una línea del carrito, con clave única (ProductID, Talla).
// El snapshot del producto (nombre/precio/imagen) se congela al agregar;
// ediciones posteriores de precio no lo modifican.
type CartItem struct {
	ProductID      string          `json:"productId"`
	Talla          string          `json:"talla"`
	Cantidad       int             `json:"cantidad"`
	NombreProducto string          `json:"nombreProducto"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Imagen         string          `json:"imagen"`
	AddedAt        time.Time       `json:"addedAt"`
}

// Cart es el carrito de un usuario (uno por email).
type Cart struct {
	UserEmail string     `json:"userEmail"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FindItem devuelve el índice de la línea (productID, talla) o -1.
func (c *Cart) FindItem(productID, talla string) int {
	for i, it := range c.Items {
		if it.ProductID == productID && it.Talla == talla {
			return i
		}
	}
	return -1
}

// Total devuelve la suma de precio×cantidad de todas las líneas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}

// Count devuelve la cantidad total de unidades en el carrito.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Cantidad
	}
	return n
}
