package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una Solicitud.
const (
	EstadoPendiente = "pendiente"
	EstadoAprobada  = "aprobada"
	EstadoEnCamino  = "en_camino"
	EstadoEntregada = "entregada"
	EstadoCancelada = "cancelada"
)

// Métodos de pago aceptados.
const (
	PagoContraentrega = "contraentrega"
	PagoTransferencia = "transferencia"
)

// transiciones válidas del estado actual a los siguientes.
var transiciones = map[string][]string{
	EstadoPendiente: {EstadoAprobada, EstadoCancelada},
	EstadoAprobada:  {EstadoEnCamino, EstadoCancelada},
	EstadoEnCamino:  {EstadoEntregada},
	EstadoEntregada: {},
	EstadoCancelada: {},
}

// CanTransition indica si el paso de estado `from` a `to` es válido.
func CanTransition(from, to string) bool {
	for _, next := range transiciones[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(estado string) bool {
	return len(transiciones[estado]) == 0
}

// Detalle es una línea de una Solicitud: snapshot inmutable de la línea de carrito.
type Detalle struct {
	ProductID      string          `json:"productId"`
	NombreProducto string          `json:"nombreProducto"`
	Imagen         string          `json:"imagen"`
	Talla          string          `json:"talla"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Domiciliario es la asignación de mensajero de una solicitud aprobada.
// No existe un directorio real de domiciliarios; la asignación es un placeholder.
type Domiciliario struct {
	Nombre     string    `json:"nombre"`
	Telefono   string    `json:"telefono"`
	AsignadoEn time.Time `json:"asignadoEn"`
}

// Solicitud es la petición de entrega de un cliente: raíz del agregado de pedido.
// Total es igual a Subtotal al crearse y nunca se recalcula (sin repricing).
type Solicitud struct {
	ID                string          `json:"id"`
	Numero            string          `json:"numero"` // legible, ej. SOL-000042
	UserEmail         string          `json:"userEmail"`
	NombreCliente     string          `json:"nombreCliente"`
	Telefono          string          `json:"telefono"`
	Direccion         string          `json:"direccion"`
	Ciudad            string          `json:"ciudad"`
	MetodoPago        string          `json:"metodoPago"`
	Detalles          []Detalle       `json:"detalles"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Total             decimal.Decimal `json:"total"`
	Estado            string          `json:"estado"`
	MotivoCancelacion string          `json:"motivoCancelacion,omitempty"`
	Domiciliario      *Domiciliario   `json:"domiciliario,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
