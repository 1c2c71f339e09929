// Package xlsx exporta el reporte de inventario a una planilla Excel (excelize).
package xlsx

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
)

// SheetName hoja con los lotes; la hoja Resumen lleva los conteos.
const (
	SheetName    = "Inventario"
	SummarySheet = "Resumen"
)

var headers = []string{
	"Medicamento", "Marca", "Categoría", "Lote", "Vence", "Días",
	"P. Compra", "P. Venta", "Cantidad", "Mínimo", "Proveedor", "Estado",
}

var _ inventory.ViewExporter = (*InventoryReportXLSX)(nil)

// InventoryReportXLSX implementa inventory.ViewExporter.
type InventoryReportXLSX struct{}

// NewInventoryReportXLSX construye el exportador.
func NewInventoryReportXLSX() *InventoryReportXLSX { return &InventoryReportXLSX{} }

func (e *InventoryReportXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *InventoryReportXLSX) Extension() string { return "xlsx" }

// Export escribe una fila por lote. Los precios se guardan como número con formato 0.00.
func (e *InventoryReportXLSX) Export(report inventory.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for r, d := range report.Rows {
		values := []interface{}{
			d.MedicineName, d.BrandName, d.CategoryName, d.BatchNumber, d.ExpiryDate, d.DaysToExpiry,
			money(d.PurchasePrice), money(d.SellingPrice), d.Quantity, d.MinimumStock, d.SupplierName, d.Status,
		}
		start, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", r+2, err)
		}
		from, _ := excelize.CoordinatesToCellName(7, r+2)
		to, _ := excelize.CoordinatesToCellName(8, r+2)
		if err := f.SetCellStyle(SheetName, from, to, moneyStyle); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(SheetName, "A", "A", 28)
	_ = f.SetColWidth(SheetName, "B", "L", 14)

	if err := writeSummary(f, report); err != nil {
		return nil, err
	}
	if SheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, report inventory.Report) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("xlsx: crear hoja resumen: %w", err)
	}
	s := report.Summary
	rows := [][]interface{}{
		{"Farmacia", report.PharmacyName},
		{"Fecha", report.GeneratedAt.Format(inventory.DateLayout)},
		{"Búsqueda", report.Filters.SearchTerm},
		{"Categoría", report.Filters.Category},
		{"Marca", report.Filters.Brand},
		{"Visibles", s.Total},
		{"Total sin filtrar", s.Unfiltered},
		{"Stock bajo", s.LowStock},
		{"Por vencer", s.ExpiringSoon},
		{"Vencidos", s.Expired},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// money convierte el monto ya formateado; si no es numérico se deja como texto.
func money(s string) interface{} {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return v
}
