package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// MedicineRepository puerto del catálogo de medicamentos.
type MedicineRepository interface {
	ListOrderedByName(ctx context.Context) ([]entity.Medicine, error)
	Create(ctx context.Context, medicine *entity.Medicine) error
}

// BrandRepository puerto de marcas.
type BrandRepository interface {
	ListOrderedByName(ctx context.Context) ([]entity.Brand, error)
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
}

// CategoryRepository puerto de categorías.
type CategoryRepository interface {
	ListOrderedByName(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
}
