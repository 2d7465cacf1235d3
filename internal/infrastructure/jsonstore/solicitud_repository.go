package jsonstore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/normalize"
)

// SolicitudRepository implementa repository.SolicitudRepository sobre el códec JSON.
type SolicitudRepository struct {
	store *storage.Store

	mu          sync.RWMutex
	rev         int64
	solicitudes []*entity.Solicitud
}

// NewSolicitudRepository carga la colección y queda suscrito a cambios externos.
func NewSolicitudRepository(store *storage.Store, notifier *storage.Notifier) (*SolicitudRepository, error) {
	r := &SolicitudRepository{store: store}
	if err := r.reload(); err != nil {
		return nil, err
	}
	subscribeReload(notifier, storage.KeySolicitudes, r.reload)
	return r, nil
}

func (r *SolicitudRepository) reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var solicitudes []*entity.Solicitud
	rev, err := r.store.Load(storage.KeySolicitudes, &solicitudes)
	if err != nil {
		return err
	}
	r.rev = rev
	r.solicitudes = solicitudes
	return nil
}

func (r *SolicitudRepository) persist() error {
	rev, err := r.store.Save(storage.KeySolicitudes, r.rev, r.solicitudes)
	if err != nil {
		return err
	}
	r.rev = rev
	return nil
}

// Create asigna el consecutivo, agrega la solicitud y persiste. El número se
// calcula bajo el lock de escritura para que nunca se repita entre
// creaciones concurrentes.
func (r *SolicitudRepository) Create(s *entity.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Numero = fmt.Sprintf("SOL-%06d", r.nextNumero())
	r.solicitudes = append(r.solicitudes, s)
	if err := r.persist(); err != nil {
		r.solicitudes = r.solicitudes[:len(r.solicitudes)-1]
		return err
	}
	return nil
}

// GetByID devuelve la solicitud o nil si no existe.
func (r *SolicitudRepository) GetByID(id string) (*entity.Solicitud, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.solicitudes {
		if s.ID == id {
			cp := *s
			cp.Detalles = append([]entity.Detalle{}, s.Detalles...)
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID y persiste.
func (r *SolicitudRepository) Update(s *entity.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.solicitudes {
		if cur.ID == s.ID {
			prev := r.solicitudes[i]
			r.solicitudes[i] = s
			if err := r.persist(); err != nil {
				r.solicitudes[i] = prev
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una página de solicitudes que cumplen el filtro y el total filtrado.
// El texto compara sin distinguir mayúsculas ni tildes contra número y nombre del cliente.
func (r *SolicitudRepository) List(filter repository.SolicitudFilter, limit, offset int) ([]*entity.Solicitud, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	texto := normalize.Fold(filter.Texto)
	matched := make([]*entity.Solicitud, 0, len(r.solicitudes))
	for _, s := range r.solicitudes {
		if filter.UserEmail != "" && !strings.EqualFold(s.UserEmail, filter.UserEmail) {
			continue
		}
		if filter.Estado != "" && s.Estado != filter.Estado {
			continue
		}
		if texto != "" &&
			!strings.Contains(normalize.Fold(s.Numero), texto) &&
			!strings.Contains(normalize.Fold(s.NombreCliente), texto) {
			continue
		}
		if filter.Fecha != nil {
			y1, m1, d1 := s.CreatedAt.Date()
			y2, m2, d2 := filter.Fecha.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		matched = append(matched, s)
	}
	total := len(matched)
	if offset >= total {
		return []*entity.Solicitud{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	out := make([]*entity.Solicitud, 0, end-offset)
	for _, s := range matched[offset:end] {
		cp := *s
		cp.Detalles = append([]entity.Detalle{}, s.Detalles...)
		out = append(out, &cp)
	}
	return out, total, nil
}

// nextNumero calcula el consecutivo a partir del mayor existente.
// El llamador debe tener el lock de escritura.
func (r *SolicitudRepository) nextNumero() int {
	max := 0
	for _, s := range r.solicitudes {
		raw := strings.TrimPrefix(s.Numero, "SOL-")
		n, err := strconv.Atoi(raw)
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
