// Package pdf implementa la representación PDF del reporte de alertas de bajo
// stock (una página A4, tabla de alertas en el orden del reporte).
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  "Reporte de bajo stock" + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días | Proveedor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE ALERTAS                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jmarulanda/stockalert-api/internal/application/alerts"
	"github.com/jmarulanda/stockalert-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ alerts.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa alerts.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	companyName string,
	report *dto.LowStockReportResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de bajo stock", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range alertRows(report.Alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(report.TotalAlerts))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha de generación (der).
func headerRow(companyName string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE BAJO STOCK", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Right),
		h("Proveedor", 2, align.Left),
	)
}

// alertRows: una fila por alerta en el orden del reporte (días ascendente).
func alertRows(alerts []dto.LowStockAlertDTO) []core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		days := "—"
		if a.DaysUntilStockout != nil {
			days = strconv.FormatInt(*a.DaysUntilStockout, 10)
		}
		warehouse := "—"
		if a.WarehouseName != nil {
			warehouse = *a.WarehouseName
		}
		supplier := "—"
		if a.Supplier != nil {
			supplier = a.Supplier.Name
		}
		result = append(result, row.New(7).Add(
			cell(a.SKU, 2, align.Left),
			cell(a.ProductName, 3, align.Left),
			cell(warehouse, 2, align.Left),
			cell(strconv.FormatInt(a.CurrentStock, 10), 1, align.Right),
			cell(strconv.FormatInt(a.Threshold, 10), 1, align.Right),
			cell(days, 1, align.Right),
			cell(supplier, 2, align.Left),
		))
	}
	return result
}

// totalRow: total de alertas del reporte.
func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de alertas: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
