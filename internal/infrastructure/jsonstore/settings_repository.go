package jsonstore

import (
	"sync"

	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
)

// SettingsRepository implementa repository.SettingsRepository sobre el códec JSON.
// La colección es de solo lectura para la API; la siembra la escribe.
type SettingsRepository struct {
	store *storage.Store

	mu       sync.RWMutex
	rev      int64
	settings []*entity.Setting
}

// NewSettingsRepository carga la colección y queda suscrito a cambios externos.
func NewSettingsRepository(store *storage.Store, notifier *storage.Notifier) (*SettingsRepository, error) {
	r := &SettingsRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeyAjustes, r.reload)
	return r, nil
}

// Reload relee la colección desde disco de forma síncrona (ver UserRepository.Reload).
func (r *SettingsRepository) Reload() error {
	return r.reload()
}

func (r *SettingsRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var settings []*entity.Setting
	rev, err := r.store.Load(storage.KeyAjustes, &settings)
	if err != nil {
		return err
	}
	r.rev = rev
	r.settings = settings
	return nil
}

// List devuelve todos los ajustes.
func (r *SettingsRepository) List() ([]*entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Setting, 0, len(r.settings))
	for _, s := range r.settings {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// Get devuelve el ajuste por clave o nil si no existe.
func (r *SettingsRepository) Get(key string) (*entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.settings {
		if s.Key == key {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// seed escribe los ajustes por defecto si la colección está vacía.
func (r *SettingsRepository) seed(defaults []*entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.settings) > 0 {
		return nil
	}
	rev, err := r.store.Save(storage.KeyAjustes, r.rev, defaults)
	if err != nil {
		return err
	}
	r.rev = rev
	r.settings = defaults
	return nil
}
