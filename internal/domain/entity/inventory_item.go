package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto del modelo de lectura cuando falta la asociación o el dato.
const (
	DefaultBrandName         = "Generic"
	DefaultCategoryName      = "Uncategorized"
	DefaultMinimumStockLevel = 10
)

// InventoryItem modelo de lectura plano: un lote de un medicamento en la farmacia,
// con marca y categoría desnormalizadas. Siempre pertenece a una sola farmacia.
type InventoryItem struct {
	ID                string
	PharmacyID        string
	MedicineID        string
	MedicineName      string
	BrandName         string
	CategoryName      string
	BatchNumber       string
	ExpiryDate        time.Time // granularidad de día
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	QuantityInStock   int
	MinimumStockLevel int
	SupplierName      string
}

// InventoryFields campos mutables de un lote (escritura). Update los sobrescribe todos.
type InventoryFields struct {
	BatchNumber       string
	ExpiryDate        time.Time
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	QuantityInStock   int
	MinimumStockLevel int
	SupplierName      string
}

// InventoryRow fila a insertar en pharmacy_inventory.
type InventoryRow struct {
	ID         string
	PharmacyID string
	MedicineID string
	InventoryFields
}
