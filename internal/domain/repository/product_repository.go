package repository

import "github.com/nublack/nublack-api/internal/domain/entity"

// ProductFilter criterios opcionales de listado de productos.
type ProductFilter struct {
	CategoryID string
	Genero     string
	Status     string
	Texto      string // coincidencia parcial sobre el nombre
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error) // sin distinguir mayúsculas
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
