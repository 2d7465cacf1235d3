package jsonstore

import (
	"strings"
	"sync"

	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
)

// CartRepository implementa repository.CartRepository sobre el códec JSON.
// Todos los carritos viven en una sola colección, uno por email de usuario.
type CartRepository struct {
	store *storage.Store

	mu    sync.RWMutex
	rev   int64
	carts []*entity.Cart
}

// NewCartRepository carga la colección y queda suscrito a cambios externos.
func NewCartRepository(store *storage.Store, notifier *storage.Notifier) (*CartRepository, error) {
	r := &CartRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeyCarritos, r.reload)
	return r, nil
}

func (r *CartRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var carts []*entity.Cart
	rev, err := r.store.Load(storage.KeyCarritos, &carts)
	if err != nil {
		return err
	}
	r.rev = rev
	r.carts = carts
	return nil
}

func (r *CartRepository) persist() error {
	rev, err := r.store.Save(storage.KeyCarritos, r.rev, r.carts)
	if err != nil {
		return err
	}
	r.rev = rev
	return nil
}

// GetByEmail devuelve el carrito del usuario; si no existe, uno vacío.
func (r *CartRepository) GetByEmail(email string) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.carts {
		if strings.EqualFold(c.UserEmail, email) {
			cp := *c
			cp.Items = append([]entity.CartItem{}, c.Items...)
			return &cp, nil
		}
	}
	return &entity.Cart{UserEmail: strings.ToLower(email), Items: []entity.CartItem{}}, nil
}

// Save inserta o reemplaza el carrito del usuario y persiste.
func (r *CartRepository) Save(cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.carts {
		if strings.EqualFold(c.UserEmail, cart.UserEmail) {
			prev := r.carts[i]
			r.carts[i] = cart
			if err := r.persist(); err != nil {
				r.carts[i] = prev
				return err
			}
			return nil
		}
	}
	r.carts = append(r.carts, cart)
	if err := r.persist(); err != nil {
		r.carts = r.carts[:len(r.carts)-1]
		return err
	}
	return nil
}

// Delete elimina el carrito del usuario; no es error si no existe.
func (r *CartRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.carts {
		if strings.EqualFold(c.UserEmail, email) {
			prev := r.carts
			r.carts = append(append([]*entity.Cart{}, r.carts[:i]...), r.carts[i+1:]...)
			if err := r.persist(); err != nil {
				r.carts = prev
				return err
			}
			return nil
		}
	}
	return nil
}
