// @title           Farmacia API
// @version         1.0
// @description     Inventario de lotes por farmacia: filtros, estados de vencimiento y stock, reportes y eventos.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Farmacia-api/docs"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
	infrapdf "github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Farmacia-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	applied, err := postgres.Migrate(ctx, pool, txRunner)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	pharmacyRepo := postgres.NewPharmacyRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool, txRunner)

	broker := inventory.NewBroker()
	inventoryUC := inventory.NewInventoryUseCase(inventory.Repositories{
		Inventory:  inventoryRepo,
		Pharmacies: pharmacyRepo,
		Medicines:  postgres.NewMedicineRepository(pool),
		Brands:     postgres.NewBrandRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
	}, broker, log, inventory.Options{
		DefaultMinimumStock: cfg.Inventory.DefaultMinimumStock,
	})

	// Reportes: planilla (excelize) y PDF (maroto)
	reportUC := inventory.NewReportUseCase(inventoryUC, map[string]inventory.ViewExporter{
		"xlsx": infraxlsx.NewInventoryReportXLSX(),
		"pdf":  infrapdf.NewInventoryReportPDF(),
	})
	pharmacyUC := pharmacy.NewPharmacyUseCase(pharmacyRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
		// sin WriteTimeout: el stream SSE mantiene la respuesta abierta
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		PharmacyUC:      pharmacyUC,
		InventoryUC:     inventoryUC,
		ReportUC:        reportUC,
		JWTSecret:       cfg.JWT.Secret,
		StreamHeartbeat: time.Duration(cfg.Inventory.StreamHeartbeatSeconds) * time.Second,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
