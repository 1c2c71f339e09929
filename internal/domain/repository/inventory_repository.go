package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryRepository puerto de lectura/escritura de lotes (pharmacy_inventory + joins de catálogo).
// Toda operación va acotada a una farmacia.
type InventoryRepository interface {
	// ListByPharmacy devuelve los lotes ya mapeados al modelo plano, con defaults aplicados.
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]entity.InventoryItem, error)
	// Insert persiste el lote y lo devuelve leído con sus joins.
	Insert(ctx context.Context, row *entity.InventoryRow) (*entity.InventoryItem, error)
	// Update sobrescribe todos los campos mutables. domain.ErrNotFound si el lote no es de la farmacia.
	Update(ctx context.Context, pharmacyID, itemID string, fields entity.InventoryFields) error
}
