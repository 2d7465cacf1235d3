package cart

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
)

// CartUseCase agregado del carrito de compras, uno por usuario autenticado.
// Las líneas guardan un snapshot del producto al momento de agregar; cambios
// de precio posteriores no alteran el carrito.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get devuelve el carrito del usuario con totales derivados.
func (uc *CartUseCase) Get(email string) (*dto.CartResponse, error) {
	cart, err := uc.carts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// Add agrega una línea. Una línea existente con la misma clave (producto,
// talla) se fusiona sumando la cantidad, nunca se duplica. Valida el stock
// vigente del producto al momento de agregar; después, no hay garantía.
func (uc *CartUseCase) Add(email string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Status != entity.ProductStatusActivo {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.carts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	idx := cart.FindItem(in.ProductID, in.Talla)
	nueva := in.Cantidad
	if idx >= 0 {
		nueva += cart.Items[idx].Cantidad
	}
	if disponible := product.StockPorTalla[in.Talla]; nueva > disponible {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	if idx >= 0 {
		cart.Items[idx].Cantidad = nueva
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID:      in.ProductID,
			Talla:          in.Talla,
			Cantidad:       in.Cantidad,
			NombreProducto: product.Name,
			PrecioUnitario: product.Price,
			Imagen:         product.PrimaryImage(),
			AddedAt:        now,
		})
	}
	cart.UpdatedAt = now
	if err := uc.carts.Save(cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// SetQuantity fija la cantidad de una línea; cantidad <= 0 la elimina.
func (uc *CartUseCase) SetQuantity(email string, in dto.SetCartItemRequest) (*dto.CartResponse, error) {
	cart, err := uc.carts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	idx := cart.FindItem(in.ProductID, in.Talla)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if in.Cantidad <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Cantidad = in.Cantidad
	}
	cart.UpdatedAt = time.Now()
	if err := uc.carts.Save(cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// Remove elimina la línea (producto, talla).
func (uc *CartUseCase) Remove(email string, in dto.RemoveCartItemRequest) (*dto.CartResponse, error) {
	return uc.SetQuantity(email, dto.SetCartItemRequest{ProductID: in.ProductID, Talla: in.Talla, Cantidad: 0})
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(email string) error {
	return uc.carts.Delete(email)
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ProductID:      it.ProductID,
			Talla:          it.Talla,
			Cantidad:       it.Cantidad,
			NombreProducto: it.NombreProducto,
			PrecioUnitario: it.PrecioUnitario,
			Imagen:         it.Imagen,
			Subtotal:       it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))),
			AddedAt:        it.AddedAt,
		})
	}
	return &dto.CartResponse{
		UserEmail: strings.ToLower(c.UserEmail),
		Items:     items,
		Total:     c.Total(),
		Count:     c.Count(),
		UpdatedAt: c.UpdatedAt,
	}
}
