package repository

import (
	"time"

	"github.com/nublack/nublack-api/internal/domain/entity"
)

// SolicitudFilter criterios de listado de solicitudes.
type SolicitudFilter struct {
	Estado    string
	Texto     string     // coincidencia parcial sobre número o nombre del cliente
	Fecha     *time.Time // coincidencia exacta de fecha de creación (día)
	UserEmail string     // solo solicitudes de este usuario (vacío = todas)
}

// SolicitudRepository define el puerto de persistencia para Solicitud (DIP).
// Create asigna el número legible consecutivo (SOL-000001, ...) en s.Numero
// bajo el mismo lock con el que agrega el registro: dos creaciones
// concurrentes nunca comparten número.
type SolicitudRepository interface {
	Create(s *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	Update(s *entity.Solicitud) error
	List(filter SolicitudFilter, limit, offset int) ([]*entity.Solicitud, int, error)
}
