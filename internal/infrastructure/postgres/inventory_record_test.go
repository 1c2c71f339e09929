package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestInventoryRecord_ToEntity_AplicaDefaults(t *testing.T) {
	rec := inventoryRecord{
		ID:           "inv-1",
		PharmacyID:   "ph-1",
		MedicineID:   "med-1",
		MedicineName: ptr("Paracetamol"),
		BatchNumber:  ptr("B-01"),
		ExpiryDate:   ptr(time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)),
	}

	item, err := rec.toEntity()
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultBrandName, item.BrandName)
	assert.Equal(t, entity.DefaultCategoryName, item.CategoryName)
	assert.True(t, item.PurchasePrice.IsZero())
	assert.True(t, item.SellingPrice.IsZero())
	assert.Equal(t, 0, item.QuantityInStock)
	assert.Equal(t, entity.DefaultMinimumStockLevel, item.MinimumStockLevel)
	assert.Equal(t, "", item.SupplierName)
}

func TestInventoryRecord_ToEntity_ConservaValores(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	rec := inventoryRecord{
		ID:            "inv-2",
		PharmacyID:    "ph-1",
		MedicineID:    "med-2",
		MedicineName:  ptr("Amoxicillin"),
		BrandName:     ptr("Acme"),
		CategoryName:  ptr("Antibiotic"),
		BatchNumber:   ptr("AMX-9"),
		ExpiryDate:    ptr(time.Date(2027, 6, 1, 0, 0, 0, 0, loc)),
		PurchasePrice: decimal.NewNullDecimal(decimal.RequireFromString("1.20")),
		SellingPrice:  decimal.NewNullDecimal(decimal.RequireFromString("2.75")),
		Quantity:      ptr(40),
		MinimumLevel:  ptr(0),
		SupplierName:  ptr("Droguería Central"),
	}

	item, err := rec.toEntity()
	require.NoError(t, err)

	assert.Equal(t, "Acme", item.BrandName)
	assert.Equal(t, "Antibiotic", item.CategoryName)
	assert.Equal(t, "2.75", item.SellingPrice.StringFixed(2))
	assert.Equal(t, "1.20", item.PurchasePrice.StringFixed(2))
	assert.Equal(t, 40, item.QuantityInStock)
	assert.Equal(t, 0, item.MinimumStockLevel, "un mínimo explícito de 0 no se reemplaza por el default")
	assert.Equal(t, time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC), item.ExpiryDate)
}

func TestInventoryRecord_ToEntity_NormalizaValoresInvalidos(t *testing.T) {
	rec := inventoryRecord{
		ID:            "inv-3",
		MedicineName:  ptr("Ibuprofeno"),
		BrandName:     ptr(""),
		ExpiryDate:    ptr(time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)),
		SellingPrice:  decimal.NewNullDecimal(decimal.NewFromInt(-3)),
		Quantity:      ptr(-5),
		MinimumLevel:  ptr(-1),
	}

	item, err := rec.toEntity()
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultBrandName, item.BrandName)
	assert.True(t, item.SellingPrice.IsZero())
	assert.Equal(t, 0, item.QuantityInStock)
	assert.Equal(t, 0, item.MinimumStockLevel)
}

func TestInventoryRecord_ToEntity_RechazaFilasIncompletas(t *testing.T) {
	_, err := inventoryRecord{ID: "sin-fecha", MedicineName: ptr("X")}.toEntity()
	assert.Error(t, err)

	_, err = inventoryRecord{ID: "sin-medicamento", ExpiryDate: ptr(time.Now())}.toEntity()
	assert.Error(t, err)
}
