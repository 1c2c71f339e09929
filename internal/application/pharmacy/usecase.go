package pharmacy

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// PharmacyUseCase configuración de la farmacia del usuario (una por usuario).
type PharmacyUseCase struct {
	repo repository.PharmacyRepository
}

// NewPharmacyUseCase construye el caso de uso con el puerto de persistencia.
func NewPharmacyUseCase(repo repository.PharmacyRepository) *PharmacyUseCase {
	return &PharmacyUseCase{repo: repo}
}

// Current devuelve la farmacia del usuario; domain.ErrSetupRequired si aún no la creó.
func (uc *PharmacyUseCase) Current(ctx context.Context, userID string) (*dto.PharmacyResponse, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	p, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewDataAccessError("get pharmacy", err)
	}
	if p == nil {
		return nil, domain.ErrSetupRequired
	}
	return toPharmacyResponse(p), nil
}

// Setup crea la farmacia del usuario. domain.ErrDuplicate si ya tiene una.
func (uc *PharmacyUseCase) Setup(ctx context.Context, userID string, in dto.SetupPharmacyRequest) (*dto.PharmacyResponse, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("nombre requerido", "name")
	}
	existing, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewDataAccessError("get pharmacy", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Pharmacy{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, domain.NewDataAccessError("create pharmacy", err)
	}
	return toPharmacyResponse(p), nil
}

func toPharmacyResponse(p *entity.Pharmacy) *dto.PharmacyResponse {
	return &dto.PharmacyResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
