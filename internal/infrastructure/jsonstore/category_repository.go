package jsonstore

import (
	"strings"
	"sync"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
)

// CategoryRepository implementa repository.CategoryRepository sobre el códec JSON.
type CategoryRepository struct {
	store *storage.Store

	mu         sync.RWMutex
	rev        int64
	categories []*entity.Category
}

// NewCategoryRepository carga la colección y queda suscrito a cambios externos.
func NewCategoryRepository(store *storage.Store, notifier *storage.Notifier) (*CategoryRepository, error) {
	r := &CategoryRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeyCategorias, r.reload)
	return r, nil
}

func (r *CategoryRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var categories []*entity.Category
	rev, err := r.store.Load(storage.KeyCategorias, &categories)
	if err != nil {
		return err
	}
	r.rev = rev
	r.categories = categories
	return nil
}

func (r *CategoryRepository) persist() error {
	rev, err := r.store.Save(storage.KeyCategorias, r.rev, r.categories)
	if err != nil {
		return err
	}
	r.rev = rev
	return nil
}

// Create agrega la categoría y persiste.
func (r *CategoryRepository) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, category)
	if err := r.persist(); err != nil {
		r.categories = r.categories[:len(r.categories)-1]
		return err
	}
	return nil
}

// GetByID devuelve la categoría o nil si no existe.
func (r *CategoryRepository) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByName devuelve la categoría por nombre (sin distinguir mayúsculas) o nil.
func (r *CategoryRepository) GetByName(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID y persiste.
func (r *CategoryRepository) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categories {
		if c.ID == category.ID {
			prev := r.categories[i]
			r.categories[i] = category
			if err := r.persist(); err != nil {
				r.categories[i] = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una página y el total de categorías.
func (r *CategoryRepository) List(limit, offset int) ([]*entity.Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := len(r.categories)
	if offset >= total {
		return []*entity.Category{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	out := make([]*entity.Category, 0, end-offset)
	for _, c := range r.categories[offset:end] {
		cp := *c
		out = append(out, &cp)
	}
	return out, total, nil
}

// Delete elimina por ID y persiste.
func (r *CategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categories {
		if c.ID == id {
			prev := r.categories
			r.categories = append(append([]*entity.Category{}, r.categories[:i]...), r.categories[i+1:]...)
			if err := r.persist(); err != nil {
				r.categories = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}
