// Package pdf genera el reporte de inventario de la farmacia en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Farmacia + filtros  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: visibles / stock bajo / por vencer / vencidos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Medicamento | Marca | Lote | Vence | Cant | Estado   │
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

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Exporter ──────────────────────────────────────────────────────────────────

var _ inventory.ViewExporter = (*InventoryReportPDF)(nil)

// InventoryReportPDF implementa inventory.ViewExporter usando Maroto v2.
type InventoryReportPDF struct{}

// NewInventoryReportPDF construye el exportador.
func NewInventoryReportPDF() *InventoryReportPDF { return &InventoryReportPDF{} }

func (g *InventoryReportPDF) ContentType() string { return "application/pdf" }
func (g *InventoryReportPDF) Extension() string   { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *InventoryReportPDF) Export(report inventory.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Inventario "+report.PharmacyName, true).
		WithAuthor(report.PharmacyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Rows) {
		m.AddRows(r)
	}
	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin lotes para los filtros aplicados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: farmacia + filtros (izq) y fecha (der).
func headerRow(r inventory.Report) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.PharmacyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtersLine(r.Filters), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+r.GeneratedAt.Format(inventory.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s engine.Summary) core.Row {
	cell := func(label string, n int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(13).Add(
		cell(fmt.Sprintf("Visibles (de %d)", s.Unfiltered), s.Total, colorPrimary),
		cell("Stock bajo", s.LowStock, colorAlert),
		cell("Por vencer", s.ExpiringSoon, colorAlert),
		cell("Vencidos", s.Expired, colorAlert),
	)
}

// tableHeaderRow: cabecera de la tabla de lotes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Medicamento", 3, align.Left),
		h("Marca", 1, align.Left),
		h("Categoría", 1, align.Left),
		h("Lote", 1, align.Left),
		h("Vence", 1, align.Center),
		h("Cant./Mín.", 1, align.Center),
		h("P. Venta", 1, align.Right),
		h("Proveedor", 1, align.Left),
		h("Estado", 2, align.Left),
	)
}

// tableDetailRows: una fila por lote.
func tableDetailRows(rows []inventory.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			cell(d.MedicineName, 3, align.Left),
			cell(d.BrandName, 1, align.Left),
			cell(d.CategoryName, 1, align.Left),
			cell(d.BatchNumber, 1, align.Left),
			cell(d.ExpiryDate, 1, align.Center),
			cell(fmt.Sprintf("%d/%d", d.Quantity, d.MinimumStock), 1, align.Center),
			cell("$"+d.SellingPrice, 1, align.Right),
			cell(nonEmpty(d.SupplierName, "-"), 1, align.Left),
			cell(d.Status, 2, align.Left),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func filtersLine(c engine.FilterCriteria) string {
	return fmt.Sprintf("Búsqueda: %s   |   Categoría: %s   |   Marca: %s",
		nonEmpty(c.SearchTerm, "-"),
		nonEmpty(c.Category, engine.AllFilter),
		nonEmpty(c.Brand, engine.AllFilter),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
