package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
)

// PharmacyHandler farmacia del usuario autenticado.
type PharmacyHandler struct {
	uc *pharmacy.PharmacyUseCase
}

// NewPharmacyHandler construye el handler.
func NewPharmacyHandler(uc *pharmacy.PharmacyUseCase) *PharmacyHandler {
	return &PharmacyHandler{uc: uc}
}

// Get godoc
// @Summary      Farmacia del usuario
// @Tags         pharmacy
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PharmacyResponse
// @Failure      409  {object}  dto.ErrorResponse  "SETUP_REQUIRED"
// @Router       /api/pharmacy [get]
func (h *PharmacyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Setup godoc
// @Summary      Configurar la farmacia del usuario
// @Tags         pharmacy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupPharmacyRequest  true  "name"
// @Success      201  {object}  dto.PharmacyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pharmacy [post]
func (h *PharmacyHandler) Setup(c *fiber.Ctx) error {
	var in dto.SetupPharmacyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Setup(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
