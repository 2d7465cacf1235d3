package jsonstore

import (
	"strings"
	"sync"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
)

// UserRepository implementa repository.UserRepository sobre el códec JSON.
// Mantiene la colección en memoria y persiste en cada mutación; un cambio
// externo (otro proceso) dispara la relectura vía el bus de cambios.
type UserRepository struct {
	store *storage.Store

	mu    sync.RWMutex
	rev   int64
	users []*entity.User
}

// NewUserRepository carga la colección y queda suscrito a cambios externos.
func NewUserRepository(store *storage.Store, notifier *storage.Notifier) (*UserRepository, error) {
	r := &UserRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeyUsuarios, r.reload)
	return r, nil
}

// Reload relee la colección desde disco de forma síncrona. Necesario tras un
// reset del almacén: la relectura por el bus de cambios es asíncrona y la
// siembra no puede decidir sobre un estado en memoria obsoleto.
func (r *UserRepository) Reload() error {
	return r.reload()
}

func (r *UserRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*entity.User
	rev, err := r.store.Load(storage.KeyUsuarios, &users)
	if err != nil {
		return err
	}
	r.rev = rev
	r.users = users
	return nil
}

// persist escribe la colección; el llamador debe tener el lock de escritura.
func (r *UserRepository) persist() error {
	rev, err := r.store.Save(storage.KeyUsuarios, r.rev, r.users)
	if err != nil {
		return err
	}
	r.rev = rev
	return nil
}

// Create agrega el usuario y persiste.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	if err := r.persist(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return err
	}
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByEmail devuelve el usuario por email (sin distinguir mayúsculas) o nil.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByDocumento devuelve el usuario por número de documento o nil.
func (r *UserRepository) GetByDocumento(numeroDocumento string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.NumeroDocumento == numeroDocumento {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID y persiste.
func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			prev := r.users[i]
			r.users[i] = user
			if err := r.persist(); err != nil {
				r.users[i] = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una página y el total de usuarios.
func (r *UserRepository) List(limit, offset int) ([]*entity.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pageUsers(r.users, limit, offset), len(r.users), nil
}

// Delete elimina por ID y persiste.
func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			prev := r.users
			r.users = append(append([]*entity.User{}, r.users[:i]...), r.users[i+1:]...)
			if err := r.persist(); err != nil {
				r.users = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func pageUsers(users []*entity.User, limit, offset int) []*entity.User {
	if offset >= len(users) {
		return []*entity.User{}
	}
	end := offset + limit
	if limit <= 0 || end > len(users) {
		end = len(users)
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range users[offset:end] {
		cp := *u
		out = append(out, &cp)
	}
	return out
}
