package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var (
	_ repository.MedicineRepository = (*MedicineRepo)(nil)
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
)

// MedicineRepo catálogo de medicamentos sobre PostgreSQL.
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador.
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// ListOrderedByName lista el catálogo con los nombres de marca y categoría.
func (r *MedicineRepo) ListOrderedByName(ctx context.Context) ([]entity.Medicine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT m.id, m.name, COALESCE(m.generic_name, ''), COALESCE(m.dosage, ''), COALESCE(m.form, ''),
		       COALESCE(m.brand_id::text, ''), COALESCE(b.name, ''),
		       COALESCE(m.category_id::text, ''), COALESCE(c.name, ''),
		       m.requires_prescription, m.created_at
		FROM medicines m
		LEFT JOIN medicine_brands b     ON b.id = m.brand_id
		LEFT JOIN medicine_categories c ON c.id = m.category_id
		ORDER BY m.name`)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Medicine, error) {
		var m entity.Medicine
		err := row.Scan(&m.ID, &m.Name, &m.GenericName, &m.Dosage, &m.Form,
			&m.BrandID, &m.BrandName, &m.CategoryID, &m.CategoryName,
			&m.RequiresPrescription, &m.CreatedAt)
		return m, err
	})
}

// Create persiste un medicamento. Marca y categoría se validan antes en el caso de uso.
func (r *MedicineRepo) Create(ctx context.Context, m *entity.Medicine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO medicines (id, name, generic_name, dosage, form, brand_id, category_id, requires_prescription, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Name, m.GenericName, m.Dosage, m.Form, m.BrandID, m.CategoryID, m.RequiresPrescription, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// BrandRepo marcas sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) ListOrderedByName(ctx context.Context) ([]entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM medicine_brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Brand, error) {
		var b entity.Brand
		err := row.Scan(&b.ID, &b.Name)
		return b, err
	})
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx, `SELECT id, name FROM medicine_brands WHERE id = $1`, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// CategoryRepo categorías sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) ListOrderedByName(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM medicine_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Category, error) {
		var c entity.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, name FROM medicine_categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
