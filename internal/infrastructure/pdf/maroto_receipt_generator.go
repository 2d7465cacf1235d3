// Package pdf implementa la generación del comprobante de una solicitud
// de entrega NUBLACK.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: NUBLACK  │  N° Solicitud + Fecha + Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Tel / Dirección / Ciudad / Pago           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Talla | P.Unit | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nublack/nublack-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa solicitud.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el comprobante PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(s *entity.Solicitud) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de solicitud NUBLACK", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, d := range s.Detalles {
		m.AddRows(detalleRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(s))

	if s.MotivoCancelacion != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Motivo de cancelación: "+s.MotivoCancelacion, props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: marca (izq) y número + fecha + estado (der).
func headerRow(s *entity.Solicitud) core.Row {
	fecha := s.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("NUBLACK", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Ropa y calzado", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SOLICITUD DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha+"   Estado: "+s.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos de contacto y envío del solicitante.
func clienteRow(s *entity.Solicitud) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s", s.NombreCliente, s.Telefono),
				props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("%s, %s   |   Pago: %s", s.Direccion, s.Ciudad, s.MetodoPago),
				props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(6).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Talla", header)),
		col.New(2).Add(text.New("P. Unitario", headerRight(header))),
		col.New(2).Add(text.New("Subtotal", headerRight(header))),
	)
}

func headerRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

func detalleRow(d entity.Detalle) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	right := headerRight(cell)
	talla := d.Talla
	if talla == "" {
		talla = "única"
	}
	return row.New(5).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", d.Cantidad), cell)),
		col.New(5).Add(text.New(d.NombreProducto, cell)),
		col.New(2).Add(text.New(talla, cell)),
		col.New(2).Add(text.New("$"+d.PrecioUnitario.StringFixed(0), right)),
		col.New(2).Add(text.New("$"+d.Subtotal.StringFixed(0), right)),
	)
}

func totalRow(s *entity.Solicitud) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL: $"+s.Total.StringFixed(0), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
