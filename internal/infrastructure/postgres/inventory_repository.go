package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventorySelect = `
	SELECT pi.id, pi.pharmacy_id, pi.medicine_id, m.name, b.name, c.name,
	       pi.batch_number, pi.expiry_date, pi.purchase_price, pi.selling_price,
	       pi.quantity_in_stock, pi.minimum_stock_level, pi.supplier_name
	FROM pharmacy_inventory pi
	LEFT JOIN medicines m            ON m.id = pi.medicine_id
	LEFT JOIN medicine_brands b      ON b.id = m.brand_id
	LEFT JOIN medicine_categories c  ON c.id = m.category_id`

// InventoryRepo adaptador de lotes sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q  Querier
	tx *TxRunner
}

// NewInventoryRepository construye el adaptador. Insert usa tx para insertar y releer en la misma transacción.
func NewInventoryRepository(q Querier, tx *TxRunner) *InventoryRepo {
	return &InventoryRepo{q: q, tx: tx}
}

// ListByPharmacy lista los lotes de la farmacia ordenados por medicamento y vencimiento.
func (r *InventoryRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, inventorySelect+`
		WHERE pi.pharmacy_id = $1
		ORDER BY m.name, pi.expiry_date, pi.id`, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := make([]entity.InventoryItem, 0)
	for rows.Next() {
		var rec inventoryRecord
		if err := rows.Scan(rec.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		item, err := rec.toEntity()
		if err != nil {
			return nil, fmt.Errorf("map inventory: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Insert persiste el lote y lo devuelve con los nombres de catálogo resueltos.
func (r *InventoryRepo) Insert(ctx context.Context, row *entity.InventoryRow) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	err := r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO pharmacy_inventory (id, pharmacy_id, medicine_id, batch_number, expiry_date,
				purchase_price, selling_price, quantity_in_stock, minimum_stock_level, supplier_name,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
			row.ID, row.PharmacyID, row.MedicineID, row.BatchNumber, row.ExpiryDate,
			row.PurchasePrice, row.SellingPrice, row.QuantityInStock, row.MinimumStockLevel, row.SupplierName,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("insert inventory: medicamento o farmacia inexistente: %w", err)
			}
			return fmt.Errorf("insert inventory: %w", err)
		}

		var rec inventoryRecord
		if err := q.QueryRow(ctx, inventorySelect+` WHERE pi.id = $1`, row.ID).Scan(rec.scanTargets()...); err != nil {
			return fmt.Errorf("reload inventory: %w", err)
		}
		out, err = rec.toEntity()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sobrescribe los campos mutables del lote (last writer wins, sin token de concurrencia).
func (r *InventoryRepo) Update(ctx context.Context, pharmacyID, itemID string, f entity.InventoryFields) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE pharmacy_inventory
		SET batch_number = $3, expiry_date = $4, purchase_price = $5, selling_price = $6,
		    quantity_in_stock = $7, minimum_stock_level = $8, supplier_name = $9, updated_at = now()
		WHERE id = $1 AND pharmacy_id = $2`,
		itemID, pharmacyID, f.BatchNumber, f.ExpiryDate, f.PurchasePrice, f.SellingPrice,
		f.QuantityInStock, f.MinimumStockLevel, f.SupplierName,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
