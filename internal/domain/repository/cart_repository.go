package repository

import "github.com/nublack/nublack-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para Cart (uno por email).
type CartRepository interface {
	// GetByEmail devuelve el carrito del usuario; si no existe devuelve uno vacío.
	GetByEmail(email string) (*entity.Cart, error)
	Save(cart *entity.Cart) error
	Delete(email string) error
}
