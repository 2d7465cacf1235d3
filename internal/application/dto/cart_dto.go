package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest entrada para agregar una línea al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Talla     string `json:"talla"`
	Cantidad  int    `json:"cantidad" validate:"required,gt=0"`
}

// SetCartItemRequest entrada para fijar la cantidad de una línea.
// Cantidad <= 0 equivale a eliminar la línea.
type SetCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Talla     string `json:"talla"`
	Cantidad  int    `json:"cantidad"`
}

// RemoveCartItemRequest entrada para eliminar una línea.
type RemoveCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Talla     string `json:"talla"`
}

// CartItemResponse salida de una línea del carrito.
type CartItemResponse struct {
	ProductID      string          `json:"productId"`
	Talla          string          `json:"talla"`
	Cantidad       int             `json:"cantidad"`
	NombreProducto string          `json:"nombreProducto"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Imagen         string          `json:"imagen"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AddedAt        time.Time       `json:"addedAt"`
}

// CartResponse salida del carrito con totales derivados.
type CartResponse struct {
	UserEmail string             `json:"userEmail"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Count     int                `json:"count"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
