package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryFieldsRequest campos mutables de un lote. Los punteros distinguen "ausente" de cero.
type InventoryFieldsRequest struct {
	BatchNumber       string           `json:"batch_number" validate:"required"`
	ExpiryDate        string           `json:"expiry_date" validate:"required"` // YYYY-MM-DD
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`                  // default 0
	SellingPrice      *decimal.Decimal `json:"selling_price" validate:"required"`
	QuantityInStock   *int             `json:"quantity_in_stock" validate:"required"`
	MinimumStockLevel *int             `json:"minimum_stock_level"` // default 10
	SupplierName      string           `json:"supplier_name"`
}

// CreateInventoryItemRequest entrada para agregar un lote a la farmacia del usuario.
type CreateInventoryItemRequest struct {
	MedicineID string `json:"medicine_id" validate:"required,uuid"`
	InventoryFieldsRequest
}

// UpdateInventoryItemRequest sobrescritura completa de un lote (no es un patch parcial).
type UpdateInventoryItemRequest struct {
	InventoryFieldsRequest
}

// InventoryItemResponse lote con su estado derivado.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	MedicineID        string          `json:"medicine_id"`
	MedicineName      string          `json:"medicine_name"`
	BrandName         string          `json:"brand_name"`
	CategoryName      string          `json:"category_name"`
	BatchNumber       string          `json:"batch_number"`
	ExpiryDate        string          `json:"expiry_date"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	SupplierName      string          `json:"supplier_name"`
	Status            []string        `json:"status,omitempty"`
	DaysToExpiry      *int            `json:"days_to_expiry,omitempty"`
}

// InventorySummaryResponse conteos del subconjunto visible.
type InventorySummaryResponse struct {
	Total        int `json:"total"`
	LowStock     int `json:"low_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	Unfiltered   int `json:"unfiltered"`
}

// InventoryFiltersResponse criterios aplicados (eco de la consulta).
type InventoryFiltersResponse struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
}

// InventoryViewResponse vista filtrada con conteos.
type InventoryViewResponse struct {
	Items         []InventoryItemResponse  `json:"items"`
	Summary       InventorySummaryResponse `json:"summary"`
	Filters       InventoryFiltersResponse `json:"filters"`
	ReferenceDate string                   `json:"reference_date"`
}

// CollectionReplacedEvent payload SSE: snapshot completo de la colección tras una escritura.
type CollectionReplacedEvent struct {
	PharmacyID string                  `json:"pharmacy_id"`
	Items      []InventoryItemResponse `json:"items"`
	At         time.Time               `json:"at"`
}
