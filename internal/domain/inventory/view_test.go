package inventory_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var today = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func item(id, name, brand, category, batch string, qty, min int, expiry time.Time) entity.InventoryItem {
	return entity.InventoryItem{
		ID:                id,
		PharmacyID:        "ph-1",
		MedicineID:        "med-" + id,
		MedicineName:      name,
		BrandName:         brand,
		CategoryName:      category,
		BatchNumber:       batch,
		ExpiryDate:        expiry,
		SellingPrice:      decimal.NewFromFloat(2.5),
		QuantityInStock:   qty,
		MinimumStockLevel: min,
	}
}

func sampleCollection() []entity.InventoryItem {
	return []entity.InventoryItem{
		item("1", "Paracetamol", "Acme", "Analgesic", "PCM-001", 5, 10, day(5)),
		item("2", "Amoxicillin", "Generic", "Antibiotic", "AMX-778", 50, 10, day(60)),
	}
}

func largerCollection() []entity.InventoryItem {
	return []entity.InventoryItem{
		item("1", "Paracetamol", "Acme", "Analgesic", "PCM-001", 5, 10, day(5)),
		item("2", "Amoxicillin", "Generic", "Antibiotic", "AMX-778", 50, 10, day(60)),
		item("3", "Ibuprofeno", "Acme", "Analgesic", "IBU-42", 100, 10, day(-3)),
		item("4", "Azitromicina", "Pfizer", "Antibiotic", "AZ-acme-9", 3, 3, day(-40)),
		item("5", "Loratadina", "Bayer", "Antihistamínico", "LOR-1", 20, 10, day(400)),
		item("6", "Omeprazol", "Generic", "Uncategorized", "OME-5", 0, 10, day(30)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeView: ejemplos de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeView_SinFiltros_DevuelveTodoConConteos(t *testing.T) {
	items := sampleCollection()
	view := inventory.ComputeView(items, inventory.FilterCriteria{Category: "all", Brand: "all"}, today)

	require.Len(t, view.Visible, 2)
	assert.Equal(t, inventory.Summary{Total: 2, LowStock: 1, ExpiringSoon: 1, Expired: 0, Unfiltered: 2}, view.Summary)
	assert.Equal(t, items, view.Items(), "sin criterios el orden y contenido deben ser idénticos")
}

func TestComputeView_BusquedaAmox(t *testing.T) {
	view := inventory.ComputeView(sampleCollection(), inventory.FilterCriteria{SearchTerm: "amox", Category: "all", Brand: "all"}, today)

	require.Len(t, view.Visible, 1)
	assert.Equal(t, "Amoxicillin", view.Visible[0].Item.MedicineName)
	assert.Equal(t, inventory.Summary{Total: 1, Unfiltered: 2}, view.Summary)
	assert.True(t, view.Visible[0].Status.Good())
}

func TestComputeView_ColeccionVacia(t *testing.T) {
	view := inventory.ComputeView(nil, inventory.FilterCriteria{SearchTerm: "x", Category: "Analgesic"}, today)

	assert.Empty(t, view.Visible)
	assert.Equal(t, inventory.Summary{}, view.Summary)
}

func TestComputeView_CriteriosVaciosEquivalenACentinela(t *testing.T) {
	items := largerCollection()
	a := inventory.ComputeView(items, inventory.FilterCriteria{}, today)
	b := inventory.ComputeView(items, inventory.FilterCriteria{SearchTerm: "   ", Category: "all", Brand: "all"}, today)

	assert.Equal(t, items, a.Items())
	assert.Equal(t, a, b)
}

func TestComputeView_ConteosSonIndependientes(t *testing.T) {
	view := inventory.ComputeView(largerCollection(), inventory.FilterCriteria{}, today)

	// 1: por vencer + bajo stock; 3: vencido; 4: vencido + bajo stock; 6: por vencer (día 30) + bajo stock
	assert.Equal(t, inventory.Summary{Total: 6, LowStock: 3, ExpiringSoon: 2, Expired: 2, Unfiltered: 6}, view.Summary)
}

func TestComputeView_ConteosSoloSobreVisibles(t *testing.T) {
	view := inventory.ComputeView(largerCollection(), inventory.FilterCriteria{Category: "antibiotic"}, today)

	require.Len(t, view.Visible, 2)
	assert.Equal(t, inventory.Summary{Total: 2, LowStock: 1, ExpiringSoon: 0, Expired: 1, Unfiltered: 6}, view.Summary)
}

func TestComputeView_NoModificaEntrada(t *testing.T) {
	items := largerCollection()
	before := append([]entity.InventoryItem(nil), items...)
	_ = inventory.ComputeView(items, inventory.FilterCriteria{SearchTerm: "acme", Brand: "Acme"}, today)

	assert.Equal(t, before, items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter: propiedades
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_BusquedaCoincideEnAlgunCampo(t *testing.T) {
	items := largerCollection()
	for _, term := range []string{"acme", "ANALG", "amx", "o", "Generic", "zzz", " ibu "} {
		visible := inventory.Filter(items, inventory.FilterCriteria{SearchTerm: term})
		kept := map[string]bool{}
		needle := strings.ToLower(strings.TrimSpace(term))
		for _, it := range visible {
			kept[it.ID] = true
			assert.True(t, containsAny(it, needle), "term %q: %s no debería estar visible", term, it.MedicineName)
		}
		for _, it := range items {
			if !kept[it.ID] {
				assert.False(t, containsAny(it, needle), "term %q: %s debería estar visible", term, it.MedicineName)
			}
		}
	}
}

func containsAny(it entity.InventoryItem, needle string) bool {
	for _, f := range []string{it.MedicineName, it.BrandName, it.CategoryName, it.BatchNumber} {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func TestFilter_BusquedaPorLote(t *testing.T) {
	visible := inventory.Filter(largerCollection(), inventory.FilterCriteria{SearchTerm: "acme-9"})

	require.Len(t, visible, 1)
	assert.Equal(t, "4", visible[0].ID)
}

func TestFilter_CategoriaYMarcaSonIgualdadExacta(t *testing.T) {
	items := largerCollection()

	// "Anti" es prefijo de varias categorías pero no coincide exactamente con ninguna.
	assert.Empty(t, inventory.Filter(items, inventory.FilterCriteria{Category: "Anti"}))

	byCategory := inventory.Filter(items, inventory.FilterCriteria{Category: "ANTIHISTAMÍNICO"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Loratadina", byCategory[0].MedicineName)

	byBrand := inventory.Filter(items, inventory.FilterCriteria{Brand: "generic"})
	require.Len(t, byBrand, 2)
	assert.Equal(t, "2", byBrand[0].ID)
	assert.Equal(t, "6", byBrand[1].ID)
}

func TestFilter_OrdenDePredicadosNoAfecta(t *testing.T) {
	items := largerCollection()
	all := inventory.FilterCriteria{SearchTerm: "a", Category: "Analgesic", Brand: "Acme"}

	combined := inventory.Filter(items, all)

	orders := [][]inventory.FilterCriteria{
		{{SearchTerm: all.SearchTerm}, {Category: all.Category}, {Brand: all.Brand}},
		{{Brand: all.Brand}, {SearchTerm: all.SearchTerm}, {Category: all.Category}},
		{{Category: all.Category}, {Brand: all.Brand}, {SearchTerm: all.SearchTerm}},
	}
	for _, stages := range orders {
		out := items
		for _, c := range stages {
			out = inventory.Filter(out, c)
		}
		assert.Equal(t, combined, out)
	}
	require.Len(t, combined, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate: derivación de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_LowStockIndependienteDeFecha(t *testing.T) {
	cases := []struct {
		qty, min int
		want     bool
	}{
		{0, 0, true}, {5, 10, true}, {10, 10, true}, {11, 10, false}, {1, 0, false},
	}
	for _, c := range cases {
		it := item("x", "X", "B", "C", "L", c.qty, c.min, day(200))
		for _, ref := range []time.Time{day(-500), today, day(199), day(1000)} {
			assert.Equal(t, c.want, inventory.Evaluate(it, ref).Has(inventory.LowStock), "qty=%d min=%d", c.qty, c.min)
		}
		assert.Equal(t, c.want, inventory.IsLowStock(it))
	}
}

func TestEvaluate_UnDiaAntesDelVencimiento(t *testing.T) {
	expiry := day(20)
	it := item("x", "X", "B", "C", "L", 50, 10, expiry)

	st := inventory.Evaluate(it, expiry.AddDate(0, 0, -1).Add(23*time.Hour))
	assert.True(t, st.Has(inventory.ExpiringSoon))
	assert.False(t, st.Has(inventory.Expired))
	assert.Equal(t, []string{inventory.LabelExpiringSoon}, st.Labels())
}

func TestEvaluate_UnDiaDespuesDelVencimiento(t *testing.T) {
	expiry := day(20)
	it := item("x", "X", "B", "C", "L", 50, 10, expiry)

	st := inventory.Evaluate(it, expiry.AddDate(0, 0, 1))
	assert.True(t, st.Has(inventory.Expired))
	assert.False(t, st.Has(inventory.ExpiringSoon))

	st = inventory.Evaluate(it, expiry.AddDate(0, 0, 31))
	assert.True(t, st.Has(inventory.Expired))
	assert.False(t, st.Has(inventory.ExpiringSoon))
}

func TestEvaluate_MismoDiaNoVencidoNiPorVencer(t *testing.T) {
	expiry := day(0)
	it := item("x", "X", "B", "C", "L", 50, 10, expiry)

	st := inventory.Evaluate(it, expiry.Add(18*time.Hour))
	assert.True(t, st.Good(), "el día del vencimiento no es estrictamente anterior: %s", st)
	assert.Equal(t, []string{inventory.LabelGood}, st.Labels())
}

func TestEvaluate_LimitesDeLaVentana(t *testing.T) {
	it30 := item("a", "A", "B", "C", "L", 50, 10, day(30))
	it31 := item("b", "A", "B", "C", "L", 50, 10, day(31))

	assert.True(t, inventory.Evaluate(it30, today).Has(inventory.ExpiringSoon))
	assert.True(t, inventory.Evaluate(it31, today).Good())
}

func TestEvaluate_VencidoYBajoStockSimultaneos(t *testing.T) {
	it := item("x", "X", "B", "C", "L", 2, 10, day(-1))

	st := inventory.Evaluate(it, today)
	assert.Equal(t, inventory.Expired|inventory.LowStock, st)
	assert.Equal(t, []string{inventory.LabelExpired, inventory.LabelLowStock}, st.Labels())
	assert.False(t, st.Good())
}

func TestDaysToExpiry_IgnoraHoraYZona(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	expiry := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2026, 3, 10, 23, 59, 0, 0, bogota)

	assert.Equal(t, 5, inventory.DaysToExpiry(expiry, ref))
	assert.Equal(t, -5, inventory.DaysToExpiry(ref, expiry))
}
