package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	CategoryID    string          `json:"categoryId" validate:"required"`
	Genero        string          `json:"genero" validate:"required,oneof=Hombre Mujer Unisex"`
	StockPorTalla map[string]int  `json:"stockPorTalla"`
	Images        []string        `json:"images"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	CategoryID    *string          `json:"categoryId"`
	Genero        *string          `json:"genero" validate:"omitempty,oneof=Hombre Mujer Unisex"`
	StockPorTalla *map[string]int  `json:"stockPorTalla"`
	Images        *[]string        `json:"images"`
	Status        *string          `json:"status" validate:"omitempty,oneof=activo inactivo"`
	Rating        *float64         `json:"rating" validate:"omitempty,gte=0,max=5"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	CategoryID    string          `json:"categoryId"`
	Genero        string          `json:"genero"`
	StockPorTalla map[string]int  `json:"stockPorTalla"`
	Images        []string        `json:"images"`
	Status        string          `json:"status"`
	Rating        float64         `json:"rating"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
