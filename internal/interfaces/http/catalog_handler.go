package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
)

// CatalogHandler listas de catálogo y alta de medicamentos.
type CatalogHandler struct {
	uc *inventory.InventoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *inventory.InventoryUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Medicamentos, marcas y categorías
// @Description  Cada lista se consulta por separado; si una falla llega vacía.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogListsResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.FetchCatalogLists(c.UserContext()))
}

// CreateMedicine godoc
// @Summary      Agregar medicamento al catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicineRequest  true  "name, brand_id, category_id"
// @Success      201  {object}  dto.MedicineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/medicines [post]
func (h *CatalogHandler) CreateMedicine(c *fiber.Ctx) error {
	var in dto.CreateMedicineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddMedicine(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
