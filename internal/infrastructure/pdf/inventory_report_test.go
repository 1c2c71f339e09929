package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
)

func TestInventoryReportPDF_GeneraDocumento(t *testing.T) {
	report := inventory.Report{
		PharmacyName: "Farmacia Central",
		GeneratedAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Filters:      engine.FilterCriteria{SearchTerm: "para"},
		Rows: []inventory.ReportRow{{
			MedicineName: "Paracetamol", BrandName: "Bayer", CategoryName: "Analgesics",
			BatchNumber: "PCM-01", ExpiryDate: "2024-06-11", DaysToExpiry: 10,
			PurchasePrice: "1.00", SellingPrice: "2.50", Quantity: 5, MinimumStock: 10,
			Status: "expiring_soon, low_stock",
		}},
		Summary: engine.Summary{Total: 1, LowStock: 1, ExpiringSoon: 1, Unfiltered: 3},
	}

	g := pdf.NewInventoryReportPDF()
	out, err := g.Export(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "pdf", g.Extension())
}

func TestInventoryReportPDF_SinFilas(t *testing.T) {
	out, err := pdf.NewInventoryReportPDF().Export(inventory.Report{PharmacyName: "Vacía"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
