package dto

import "time"

// SetupPharmacyRequest entrada para completar la configuración de la farmacia del usuario.
type SetupPharmacyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// PharmacyResponse salida de la farmacia del usuario.
type PharmacyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
