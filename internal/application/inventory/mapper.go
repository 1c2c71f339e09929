package inventory

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

func toItemResponse(v engine.ItemView) dto.InventoryItemResponse {
	it := v.Item
	days := v.DaysToExpiry
	return dto.InventoryItemResponse{
		ID:                it.ID,
		MedicineID:        it.MedicineID,
		MedicineName:      it.MedicineName,
		BrandName:         it.BrandName,
		CategoryName:      it.CategoryName,
		BatchNumber:       it.BatchNumber,
		ExpiryDate:        it.ExpiryDate.Format(DateLayout),
		PurchasePrice:     it.PurchasePrice,
		SellingPrice:      it.SellingPrice,
		QuantityInStock:   it.QuantityInStock,
		MinimumStockLevel: it.MinimumStockLevel,
		SupplierName:      it.SupplierName,
		Status:            v.Status.Labels(),
		DaysToExpiry:      &days,
	}
}

func toViewResponse(v engine.View, c engine.FilterCriteria, ref time.Time) *dto.InventoryViewResponse {
	items := make([]dto.InventoryItemResponse, 0, len(v.Visible))
	for _, iv := range v.Visible {
		items = append(items, toItemResponse(iv))
	}
	return &dto.InventoryViewResponse{
		Items: items,
		Summary: dto.InventorySummaryResponse{
			Total:        v.Summary.Total,
			LowStock:     v.Summary.LowStock,
			ExpiringSoon: v.Summary.ExpiringSoon,
			Expired:      v.Summary.Expired,
			Unfiltered:   v.Summary.Unfiltered,
		},
		Filters:       dto.InventoryFiltersResponse{Search: c.SearchTerm, Category: c.Category, Brand: c.Brand},
		ReferenceDate: ref.Format(DateLayout),
	}
}

// ToEventPayload convierte el snapshot al formato que viaja por SSE, con estados a la fecha ref.
func ToEventPayload(ev CollectionReplaced, ref time.Time) dto.CollectionReplacedEvent {
	items := make([]dto.InventoryItemResponse, 0, len(ev.Items))
	for _, it := range ev.Items {
		items = append(items, toItemResponse(engine.ItemView{
			Item:         it,
			Status:       engine.Evaluate(it, ref),
			DaysToExpiry: engine.DaysToExpiry(it.ExpiryDate, ref),
		}))
	}
	return dto.CollectionReplacedEvent{PharmacyID: ev.PharmacyID, Items: items, At: ev.At}
}

func toMedicineResponse(m entity.Medicine) dto.MedicineResponse {
	return dto.MedicineResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		GenericName:          m.GenericName,
		Dosage:               m.Dosage,
		Form:                 m.Form,
		BrandID:              m.BrandID,
		BrandName:            m.BrandName,
		CategoryID:           m.CategoryID,
		CategoryName:         m.CategoryName,
		RequiresPrescription: m.RequiresPrescription,
	}
}
