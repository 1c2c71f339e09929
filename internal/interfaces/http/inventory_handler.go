package http

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

// EventCollectionReplaced nombre del evento SSE con el snapshot completo.
const EventCollectionReplaced = "collection_replaced"

// InventoryHandler maneja las peticiones HTTP del inventario de la farmacia (protegido).
type InventoryHandler struct {
	uc        *inventory.InventoryUseCase
	reports   *inventory.ReportUseCase
	heartbeat time.Duration
}

// NewInventoryHandler construye el handler. heartbeat es el intervalo de keep-alive del stream.
func NewInventoryHandler(uc *inventory.InventoryUseCase, reports *inventory.ReportUseCase, heartbeat time.Duration) *InventoryHandler {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	return &InventoryHandler{uc: uc, reports: reports, heartbeat: heartbeat}
}

func criteriaFromQuery(c *fiber.Ctx) engine.FilterCriteria {
	return engine.FilterCriteria{
		SearchTerm: c.Query("search"),
		Category:   c.Query("category", engine.AllFilter),
		Brand:      c.Query("brand", engine.AllFilter),
	}
}

// List godoc
// @Summary      Inventario filtrado con estados y resumen
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto libre (medicamento, marca, categoría, lote)"
// @Param        category  query  string  false  "Categoría exacta o 'all'"
// @Param        brand     query  string  false  "Marca exacta o 'all'"
// @Success      200  {object}  dto.InventoryViewResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.View(c.UserContext(), GetUserID(c), criteriaFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "medicine_id, batch_number, expiry_date, selling_price, quantity_in_stock"
// @Success      201  {object}  dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "SETUP_REQUIRED"
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir lote
// @Description  Reemplaza todos los campos mutables; last writer wins.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "campos del lote"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateItem(c.UserContext(), GetUserID(c), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Descargar reporte de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format    query  string  true   "xlsx | pdf"
// @Param        search    query  string  false  "Texto libre"
// @Param        category  query  string  false  "Categoría exacta o 'all'"
// @Param        brand     query  string  false  "Marca exacta o 'all'"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	out, err := h.reports.Export(c.UserContext(), GetUserID(c), criteriaFromQuery(c), c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Content)
}

// Stream godoc
// @Summary      Stream SSE de la colección
// @Description  Envía el snapshot actual y luego un evento collection_replaced tras cada escritura.
// @Tags         inventory
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse  "SETUP_REQUIRED"
// @Router       /api/inventory/stream [get]
func (h *InventoryHandler) Stream(c *fiber.Ctx) error {
	sub, err := h.uc.Subscribe(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	encode := c.App().Config().JSONEncoder
	uc := h.uc
	heartbeat := h.heartbeat

	// el contexto de fasthttp no es válido dentro del writer: sólo se usan valores capturados
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Cancel()
		send := func(ev inventory.CollectionReplaced) error {
			payload, err := encode(inventory.ToEventPayload(ev, uc.Now()))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", EventCollectionReplaced, payload); err != nil {
				return err
			}
			return w.Flush()
		}
		if send(sub.Initial) != nil {
			return
		}

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-sub.Events:
				if !ok || send(ev) != nil {
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if w.Flush() != nil {
					return
				}
			}
		}
	}))
	return nil
}
