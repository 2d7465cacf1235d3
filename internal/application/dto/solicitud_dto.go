package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSolicitudRequest entrada del checkout: datos de contacto y envío.
// Los detalles salen del carrito vigente del usuario, nunca del cuerpo.
type CreateSolicitudRequest struct {
	NombreCliente string `json:"nombreCliente" validate:"required,min=1,max=200"`
	Telefono      string `json:"telefono" validate:"required,min=7,max=15"`
	Direccion     string `json:"direccion" validate:"required,min=5,max=300"`
	Ciudad        string `json:"ciudad" validate:"required,min=1,max=100"`
	MetodoPago    string `json:"metodoPago" validate:"required,oneof=contraentrega transferencia"`
}

// ChangeEstadoRequest entrada para una transición de estado.
// Motivo solo es obligatorio (y no en blanco) al cancelar.
type ChangeEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=aprobada en_camino entregada cancelada"`
	Motivo string `json:"motivo"`
}

// DetalleResponse salida de una línea de solicitud.
type DetalleResponse struct {
	ProductID      string          `json:"productId"`
	NombreProducto string          `json:"nombreProducto"`
	Imagen         string          `json:"imagen"`
	Talla          string          `json:"talla"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// DomiciliarioResponse salida de la asignación de mensajero.
type DomiciliarioResponse struct {
	Nombre     string    `json:"nombre"`
	Telefono   string    `json:"telefono"`
	AsignadoEn time.Time `json:"asignadoEn"`
}

// SolicitudResponse salida de una solicitud.
type SolicitudResponse struct {
	ID                string                `json:"id"`
	Numero            string                `json:"numero"`
	UserEmail         string                `json:"userEmail"`
	NombreCliente     string                `json:"nombreCliente"`
	Telefono          string                `json:"telefono"`
	Direccion         string                `json:"direccion"`
	Ciudad            string                `json:"ciudad"`
	MetodoPago        string                `json:"metodoPago"`
	Detalles          []DetalleResponse     `json:"detalles"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	Total             decimal.Decimal       `json:"total"`
	Estado            string                `json:"estado"`
	MotivoCancelacion string                `json:"motivoCancelacion,omitempty"`
	Domiciliario      *DomiciliarioResponse `json:"domiciliario,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// SolicitudListResponse lista paginada de solicitudes.
type SolicitudListResponse struct {
	Items []SolicitudResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
