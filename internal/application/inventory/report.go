package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// Report inventario filtrado listo para exportar. Montos con dos decimales y fechas YYYY-MM-DD.
type Report struct {
	PharmacyName string
	GeneratedAt  time.Time
	Filters      engine.FilterCriteria
	Rows         []ReportRow
	Summary      engine.Summary
}

// ReportRow una fila por lote visible.
type ReportRow struct {
	MedicineName  string
	BrandName     string
	CategoryName  string
	BatchNumber   string
	ExpiryDate    string
	DaysToExpiry  int
	PurchasePrice string
	SellingPrice  string
	Quantity      int
	MinimumStock  int
	SupplierName  string
	Status        string
}

// ViewExporter genera el archivo de un formato concreto.
type ViewExporter interface {
	Export(report Report) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportResult archivo generado.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportUseCase exporta la vista de inventario en los formatos registrados.
type ReportUseCase struct {
	inventory *InventoryUseCase
	exporters map[string]ViewExporter
}

// NewReportUseCase registra los exportadores por formato (p. ej. "xlsx", "pdf").
func NewReportUseCase(inventory *InventoryUseCase, exporters map[string]ViewExporter) *ReportUseCase {
	return &ReportUseCase{inventory: inventory, exporters: exporters}
}

// Formats formatos disponibles, ordenados.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Export construye el reporte con los mismos filtros que la vista y lo serializa en format.
func (uc *ReportUseCase) Export(ctx context.Context, userID string, criteria engine.FilterCriteria, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, domain.NewValidationError(
			fmt.Sprintf("formato no soportado (disponibles: %s)", strings.Join(uc.Formats(), ", ")), "format")
	}

	p, err := uc.inventory.requirePharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := uc.inventory.repos.Inventory.ListByPharmacy(ctx, p.ID)
	if err != nil {
		return nil, domain.NewDataAccessError("list inventory", err)
	}
	now := uc.inventory.opts.Now()
	report := BuildReport(p.Name, engine.ComputeView(items, criteria, now), criteria, now)

	content, err := exp.Export(report)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &ExportResult{
		Filename:    fmt.Sprintf("inventario-%s.%s", now.Format(DateLayout), exp.Extension()),
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}

// BuildReport da formato de presentación a una vista ya calculada.
func BuildReport(pharmacyName string, view engine.View, criteria engine.FilterCriteria, generatedAt time.Time) Report {
	rows := make([]ReportRow, 0, len(view.Visible))
	for _, iv := range view.Visible {
		it := iv.Item
		rows = append(rows, ReportRow{
			MedicineName:  it.MedicineName,
			BrandName:     it.BrandName,
			CategoryName:  it.CategoryName,
			BatchNumber:   it.BatchNumber,
			ExpiryDate:    it.ExpiryDate.Format(DateLayout),
			DaysToExpiry:  iv.DaysToExpiry,
			PurchasePrice: it.PurchasePrice.StringFixed(2),
			SellingPrice:  it.SellingPrice.StringFixed(2),
			Quantity:      it.QuantityInStock,
			MinimumStock:  it.MinimumStockLevel,
			SupplierName:  it.SupplierName,
			Status:        strings.Join(iv.Status.Labels(), ", "),
		})
	}
	return Report{
		PharmacyName: pharmacyName,
		GeneratedAt:  generatedAt,
		Filters:      criteria,
		Rows:         rows,
		Summary:      view.Summary,
	}
}
