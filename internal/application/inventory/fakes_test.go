package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

var errStore = errors.New("conexión rechazada")

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memInventory struct {
	mu       sync.Mutex
	items    map[string]entity.InventoryItem
	calls    int
	listErr  error
	writeErr error
	failList int // los próximos N ListByPharmacy fallan
}

func newMemInventory(items ...entity.InventoryItem) *memInventory {
	m := &memInventory{items: make(map[string]entity.InventoryItem)}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *memInventory) ListByPharmacy(_ context.Context, pharmacyID string) ([]entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.failList > 0 {
		m.failList--
		return nil, errStore
	}
	out := []entity.InventoryItem{}
	for _, it := range m.items {
		if it.PharmacyID == pharmacyID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memInventory) Insert(_ context.Context, row *entity.InventoryRow) (*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	it := entity.InventoryItem{
		ID:                row.ID,
		PharmacyID:        row.PharmacyID,
		MedicineID:        row.MedicineID,
		MedicineName:      "Paracetamol",
		BrandName:         entity.DefaultBrandName,
		CategoryName:      entity.DefaultCategoryName,
		BatchNumber:       row.BatchNumber,
		ExpiryDate:        row.ExpiryDate,
		PurchasePrice:     row.PurchasePrice,
		SellingPrice:      row.SellingPrice,
		QuantityInStock:   row.QuantityInStock,
		MinimumStockLevel: row.MinimumStockLevel,
		SupplierName:      row.SupplierName,
	}
	m.items[it.ID] = it
	return &it, nil
}

func (m *memInventory) Update(_ context.Context, pharmacyID, itemID string, f entity.InventoryFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.writeErr != nil {
		return m.writeErr
	}
	it, ok := m.items[itemID]
	if !ok || it.PharmacyID != pharmacyID {
		return domain.ErrNotFound
	}
	it.BatchNumber = f.BatchNumber
	it.ExpiryDate = f.ExpiryDate
	it.PurchasePrice = f.PurchasePrice
	it.SellingPrice = f.SellingPrice
	it.QuantityInStock = f.QuantityInStock
	it.MinimumStockLevel = f.MinimumStockLevel
	it.SupplierName = f.SupplierName
	m.items[itemID] = it
	return nil
}

func (m *memInventory) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type memPharmacies struct {
	byUser map[string]*entity.Pharmacy
	err    error
}

func (m *memPharmacies) GetByUserID(_ context.Context, userID string) (*entity.Pharmacy, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUser[userID], nil
}

func (m *memPharmacies) Create(_ context.Context, p *entity.Pharmacy) error {
	if _, ok := m.byUser[p.UserID]; ok {
		return domain.ErrDuplicate
	}
	m.byUser[p.UserID] = p
	return nil
}

type memMedicines struct {
	list    []entity.Medicine
	err     error
	created []entity.Medicine
}

func (m *memMedicines) ListOrderedByName(context.Context) ([]entity.Medicine, error) {
	return m.list, m.err
}

func (m *memMedicines) Create(_ context.Context, med *entity.Medicine) error {
	m.created = append(m.created, *med)
	return nil
}

type memBrands struct {
	list []entity.Brand
	err  error
}

func (m *memBrands) ListOrderedByName(context.Context) ([]entity.Brand, error) { return m.list, m.err }

func (m *memBrands) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	for _, b := range m.list {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, nil
}

type memCategories struct {
	list []entity.Category
	err  error
}

func (m *memCategories) ListOrderedByName(context.Context) ([]entity.Category, error) {
	return m.list, m.err
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range m.list {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}
