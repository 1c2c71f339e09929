package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	PharmacyUC      *pharmacy.PharmacyUseCase
	InventoryUC     *inventory.InventoryUseCase
	ReportUC        *inventory.ReportUseCase
	JWTSecret       string
	StreamHeartbeat time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Farmacia del usuario
	pharmacyHandler := NewPharmacyHandler(deps.PharmacyUC)
	protected.Get("/pharmacy", pharmacyHandler.Get)
	protected.Post("/pharmacy", pharmacyHandler.Setup)

	// Inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC, deps.StreamHeartbeat)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/export", inventoryHandler.Export)
	invGroup.Get("/stream", inventoryHandler.Stream)
	invGroup.Put("/:id", inventoryHandler.Update)

	// Catálogo
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.InventoryUC)
	catalog.Get("/", catalogHandler.List)
	catalog.Post("/medicines", catalogHandler.CreateMedicine)
}
