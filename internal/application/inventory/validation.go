package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// DateLayout formato de fecha de vencimiento en la API y en los reportes.
const DateLayout = "2006-01-02"

// parseFields valida los campos mutables y aplica defaults. Reporta todos los campos inválidos juntos.
func parseFields(in dto.InventoryFieldsRequest, defaultMin int) (entity.InventoryFields, error) {
	var bad []string
	f := entity.InventoryFields{
		BatchNumber:       strings.TrimSpace(in.BatchNumber),
		SupplierName:      strings.TrimSpace(in.SupplierName),
		PurchasePrice:     decimal.Zero,
		MinimumStockLevel: defaultMin,
	}

	if f.BatchNumber == "" {
		bad = append(bad, "batch_number")
	}

	expiry, err := ParseDate(in.ExpiryDate)
	if err != nil {
		bad = append(bad, "expiry_date")
	}
	f.ExpiryDate = expiry

	if in.SellingPrice == nil || in.SellingPrice.IsNegative() {
		bad = append(bad, "selling_price")
	} else {
		f.SellingPrice = *in.SellingPrice
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			bad = append(bad, "purchase_price")
		} else {
			f.PurchasePrice = *in.PurchasePrice
		}
	}

	if in.QuantityInStock == nil || *in.QuantityInStock < 0 {
		bad = append(bad, "quantity_in_stock")
	} else {
		f.QuantityInStock = *in.QuantityInStock
	}
	if in.MinimumStockLevel != nil {
		if *in.MinimumStockLevel < 0 {
			bad = append(bad, "minimum_stock_level")
		} else {
			f.MinimumStockLevel = *in.MinimumStockLevel
		}
	}

	if len(bad) > 0 {
		return entity.InventoryFields{}, domain.NewValidationError("campos requeridos faltantes o inválidos", bad...)
	}
	return f, nil
}

// ParseDate interpreta YYYY-MM-DD como fecha de calendario (medianoche UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
