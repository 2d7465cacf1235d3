package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/pdf"
)

func testSolicitud() *entity.Solicitud {
	return &entity.Solicitud{
		ID:            "11111111-1111-1111-1111-111111111111",
		Numero:        "SOL-000042",
		UserEmail:     "cliente@example.com",
		NombreCliente: "María José Gutiérrez",
		Telefono:      "3001234567",
		Direccion:     "Calle 45 # 12-34",
		Ciudad:        "Bogotá",
		MetodoPago:    entity.PagoContraentrega,
		Detalles: []entity.Detalle{
			{
				ProductID:      "p1",
				NombreProducto: "Camiseta básica negra",
				Talla:          "M",
				Cantidad:       2,
				PrecioUnitario: decimal.NewFromInt(10000),
				Subtotal:       decimal.NewFromInt(20000),
			},
			{
				ProductID:      "p2",
				NombreProducto: "Gorra plana",
				Cantidad:       1,
				PrecioUnitario: decimal.NewFromInt(5000),
				Subtotal:       decimal.NewFromInt(5000),
			},
		},
		Subtotal:  decimal.NewFromInt(25000),
		Total:     decimal.NewFromInt(25000),
		Estado:    entity.EstadoPendiente,
		CreatedAt: time.Date(2024, 11, 29, 15, 4, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 11, 29, 15, 4, 0, 0, time.UTC),
	}
}

func TestGenerate_ProduceUnPDFValido(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator()

	out, err := gen.Generate(testSolicitud())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	assert.Equal(t, "%PDF", string(out[:4]), "los bytes deben empezar con la cabecera PDF")
}

func TestGenerate_SolicitudCancelada_IncluyeMotivo(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator()

	s := testSolicitud()
	s.Estado = entity.EstadoCancelada
	s.MotivoCancelacion = "Cliente cambió de opinión"

	out, err := gen.Generate(s)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
