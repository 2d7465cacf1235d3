package jsonstore

import (
	"strings"
	"sync"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/normalize"
)

// ProductRepository implementa repository.ProductRepository sobre el códec JSON.
type ProductRepository struct {
	store *storage.Store

	mu       sync.RWMutex
	rev      int64
	products []*entity.Product
}

// NewProductRepository carga la colección y queda suscrito a cambios externos.
func NewProductRepository(store *storage.Store, notifier *storage.Notifier) (*ProductRepository, error) {
	r := &ProductRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeyProductos, r.reload)
	return r, nil
}

func (r *ProductRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var products []*entity.Product
	rev, err := r.store.Load(storage.KeyProductos, &products)
	if err != nil {
		return err
	}
	r.rev = rev
	r.products = products
	return nil
}

func (r *ProductRepository) persist() error {
	rev, err := r.store.Save(storage.KeyProductos, r.rev, r.products)
	if err != nil {
		return err
	}
	r.rev = rev
	return nil
}

// Create agrega el producto y persiste.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, product)
	if err := r.persist(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return err
	}
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByName devuelve el producto por nombre, sin distinguir mayúsculas, o nil.
// Busca entre activos e inactivos: el nombre es único en toda la colección.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID y persiste.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			prev := r.products[i]
			r.products[i] = product
			if err := r.persist(); err != nil {
				r.products[i] = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una página de productos que cumplen el filtro y el total filtrado.
// El texto compara sin distinguir mayúsculas ni tildes contra el nombre.
func (r *ProductRepository) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	texto := normalize.Fold(filter.Texto)
	matched := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Genero != "" && p.Genero != filter.Genero {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if texto != "" && !strings.Contains(normalize.Fold(p.Name), texto) {
			continue
		}
		matched = append(matched, p)
	}
	total := len(matched)
	if offset >= total {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	out := make([]*entity.Product, 0, end-offset)
	for _, p := range matched[offset:end] {
		cp := *p
		out = append(out, &cp)
	}
	return out, total, nil
}

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepository) CountByCategory(categoryID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// Delete elimina por ID y persiste.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			prev := r.products
			r.products = append(append([]*entity.Product{}, r.products[:i]...), r.products[i+1:]...)
			if err := r.persist(); err != nil {
				r.products = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}
