package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// PharmacyRepository puerto de persistencia para Pharmacy.
type PharmacyRepository interface {
	// GetByUserID devuelve (nil, nil) si el usuario aún no configuró su farmacia.
	GetByUserID(ctx context.Context, userID string) (*entity.Pharmacy, error)
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error
}
