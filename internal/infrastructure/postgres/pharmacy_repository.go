package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.PharmacyRepository = (*PharmacyRepo)(nil)

// PharmacyRepo implementación de PharmacyRepository sobre PostgreSQL.
type PharmacyRepo struct {
	q Querier
}

// NewPharmacyRepository construye el adaptador. Acepta pool o tx (Querier).
func NewPharmacyRepository(q Querier) *PharmacyRepo {
	return &PharmacyRepo{q: q}
}

func (r *PharmacyRepo) GetByUserID(ctx context.Context, userID string) (*entity.Pharmacy, error) {
	var p entity.Pharmacy
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, name, created_at FROM pharmacies WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy by user: %w", err)
	}
	return &p, nil
}

// Create persiste la farmacia. domain.ErrDuplicate si el usuario ya tiene una (user_id es único).
func (r *PharmacyRepo) Create(ctx context.Context, p *entity.Pharmacy) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO pharmacies (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.Name, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pharmacy: %w", err)
	}
	return nil
}
