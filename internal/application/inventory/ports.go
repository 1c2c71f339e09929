package inventory

import (
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Repositories puertos que necesita el caso de uso de inventario.
type Repositories struct {
	Inventory  repository.InventoryRepository
	Pharmacies repository.PharmacyRepository
	Medicines  repository.MedicineRepository
	Brands     repository.BrandRepository
	Categories repository.CategoryRepository
}
