package postgres

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// inventoryRecord fila cruda del join pharmacy_inventory + medicines + marcas + categorías.
// Todo lo que puede venir NULL se escanea como nullable y se resuelve en toEntity.
type inventoryRecord struct {
	ID            string
	PharmacyID    string
	MedicineID    string
	MedicineName  *string
	BrandName     *string
	CategoryName  *string
	BatchNumber   *string
	ExpiryDate    *time.Time
	PurchasePrice decimal.NullDecimal
	SellingPrice  decimal.NullDecimal
	Quantity      *int
	MinimumLevel  *int
	SupplierName  *string
}

// scanTargets orden idéntico a inventorySelectColumns.
func (r *inventoryRecord) scanTargets() []any {
	return []any{
		&r.ID, &r.PharmacyID, &r.MedicineID, &r.MedicineName, &r.BrandName, &r.CategoryName,
		&r.BatchNumber, &r.ExpiryDate, &r.PurchasePrice, &r.SellingPrice,
		&r.Quantity, &r.MinimumLevel, &r.SupplierName,
	}
}

// toEntity única frontera de parseo: aplica los defaults del modelo de lectura y
// rechaza filas sin los datos que no admiten default (medicamento, vencimiento).
func (r inventoryRecord) toEntity() (entity.InventoryItem, error) {
	if r.ExpiryDate == nil {
		return entity.InventoryItem{}, fmt.Errorf("lote %s sin fecha de vencimiento", r.ID)
	}
	if r.MedicineName == nil {
		return entity.InventoryItem{}, fmt.Errorf("lote %s sin medicamento asociado", r.ID)
	}
	y, m, d := r.ExpiryDate.Date()
	return entity.InventoryItem{
		ID:                r.ID,
		PharmacyID:        r.PharmacyID,
		MedicineID:        r.MedicineID,
		MedicineName:      *r.MedicineName,
		BrandName:         orDefault(r.BrandName, entity.DefaultBrandName),
		CategoryName:      orDefault(r.CategoryName, entity.DefaultCategoryName),
		BatchNumber:       orDefault(r.BatchNumber, ""),
		ExpiryDate:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		PurchasePrice:     nonNegative(r.PurchasePrice),
		SellingPrice:      nonNegative(r.SellingPrice),
		QuantityInStock:   clampInt(r.Quantity, 0),
		MinimumStockLevel: clampInt(r.MinimumLevel, entity.DefaultMinimumStockLevel),
		SupplierName:      orDefault(r.SupplierName, ""),
	}, nil
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func nonNegative(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid || d.Decimal.IsNegative() {
		return decimal.Zero
	}
	return d.Decimal
}

// clampInt def si es NULL; 0 si es negativo.
func clampInt(n *int, def int) int {
	if n == nil {
		return def
	}
	if *n < 0 {
		return 0
	}
	return *n
}
