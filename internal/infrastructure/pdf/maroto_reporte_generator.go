// Package pdf genera la representación impresa del reporte de ingresos con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Ingresos + período                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Comprobante | Tipo | DNI | Monto            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Notas de crédito / NETO                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoReporteGenerator implementa billing.ReportePDFGenerator.
type MarotoReporteGenerator struct{}

func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteIngresos genera el PDF del período y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteIngresos(_ context.Context, reporte *appbilling.ReporteIngresos) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ingresos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabeceraRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))

	m.AddRows(tablaCabeceraRow())
	for _, r := range tablaFilas(reporte.Filas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalesRow(reporte))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabeceraRow(reporte *appbilling.ReporteIngresos) core.Row {
	periodo := fmt.Sprintf("Del %s al %s",
		reporte.Desde.Format("02/01/2006"), reporte.Hasta.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE INGRESOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New(periodo, props.Text{Size: 9, Top: 9, Color: colorGris}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d comprobantes", len(reporte.Filas)), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGris,
			}),
		),
	)
}

func tablaCabeceraRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Comprobante", 3, align.Left),
		h("Tipo", 3, align.Left),
		h("DNI", 2, align.Center),
		h("Monto S/", 2, align.Right),
	)
}

func tablaFilas(filas []*entity.Ingreso) []core.Row {
	result := make([]core.Row, 0, len(filas))
	for _, ing := range filas {
		colorMonto := colorPrimario
		if ing.Monto.IsNegative() {
			colorMonto = colorRojo
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				ing.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				ing.NumeroComprobante,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				ing.TipoTransaccion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				ing.DNI,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				ing.Monto.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorMonto},
			)),
		))
	}
	return result
}

func totalesRow(reporte *appbilling.ReporteIngresos) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Ventas:"),
			label("Notas de crédito:"),
			label("NETO:"),
		),
		col.New(4).Add(
			value("S/ "+reporte.Ventas.StringFixed(2), colorPrimario),
			value("S/ "+reporte.Notas.StringFixed(2), colorRojo),
			value("S/ "+reporte.Neto.StringFixed(2), colorPrimario),
		),
	)
}
