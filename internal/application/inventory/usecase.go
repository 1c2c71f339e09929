package inventory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	engine "github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// Options parámetros del caso de uso. Now es inyectable para tests.
type Options struct {
	DefaultMinimumStock int
	Now                 func() time.Time
}

// InventoryUseCase lectura y escritura de lotes de la farmacia del usuario autenticado.
type InventoryUseCase struct {
	repos  Repositories
	broker *Broker
	log    *logger.Logger
	opts   Options
}

// NewInventoryUseCase construye el caso de uso. broker puede ser nil (sin eventos).
func NewInventoryUseCase(repos Repositories, broker *Broker, log *logger.Logger, opts Options) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultMinimumStock < 0 {
		opts.DefaultMinimumStock = entity.DefaultMinimumStockLevel
	}
	return &InventoryUseCase{repos: repos, broker: broker, log: log.Component("inventory"), opts: opts}
}

// FetchInventory devuelve todos los lotes de la farmacia del usuario.
// Sin farmacia configurada devuelve colección vacía, no error.
func (uc *InventoryUseCase) FetchInventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	p, err := uc.resolvePharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return []entity.InventoryItem{}, nil
	}
	items, err := uc.repos.Inventory.ListByPharmacy(ctx, p.ID)
	if err != nil {
		return nil, domain.NewDataAccessError("list inventory", err)
	}
	return items, nil
}

// FetchCatalogLists lee medicamentos, marcas y categorías de forma independiente.
// Un fallo deja esa lista vacía y se registra; nunca devuelve error.
func (uc *InventoryUseCase) FetchCatalogLists(ctx context.Context) *dto.CatalogListsResponse {
	out := &dto.CatalogListsResponse{
		Medicines:  []dto.MedicineResponse{},
		Brands:     []dto.NamedResponse{},
		Categories: []dto.NamedResponse{},
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		list, err := uc.repos.Medicines.ListOrderedByName(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Str("list", "medicines").Msg("catálogo no disponible")
			return
		}
		for _, m := range list {
			out.Medicines = append(out.Medicines, toMedicineResponse(m))
		}
	}()
	go func() {
		defer wg.Done()
		list, err := uc.repos.Brands.ListOrderedByName(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Str("list", "brands").Msg("catálogo no disponible")
			return
		}
		for _, b := range list {
			out.Brands = append(out.Brands, dto.NamedResponse{ID: b.ID, Name: b.Name})
		}
	}()
	go func() {
		defer wg.Done()
		list, err := uc.repos.Categories.ListOrderedByName(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Str("list", "categories").Msg("catálogo no disponible")
			return
		}
		for _, c := range list {
			out.Categories = append(out.Categories, dto.NamedResponse{ID: c.ID, Name: c.Name})
		}
	}()
	wg.Wait()
	return out
}

// AddItem valida y agrega un lote a la farmacia del usuario.
// La validación corre antes de cualquier acceso al almacén.
func (uc *InventoryUseCase) AddItem(ctx context.Context, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	fields, err := parseFields(in.InventoryFieldsRequest, uc.opts.DefaultMinimumStock)
	medicineID := strings.TrimSpace(in.MedicineID)
	if !isUUID(medicineID) {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			ve.Fields = append([]string{"medicine_id"}, ve.Fields...)
		} else {
			err = domain.NewValidationError("campos requeridos faltantes o inválidos", "medicine_id")
		}
	}
	if err != nil {
		return nil, err
	}

	p, err := uc.requirePharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := uc.repos.Inventory.Insert(ctx, &entity.InventoryRow{
		ID:              uuid.New().String(),
		PharmacyID:      p.ID,
		MedicineID:      medicineID,
		InventoryFields: fields,
	})
	if err != nil {
		return nil, domain.NewDataAccessError("insert inventory", err)
	}
	uc.log.Info().Str("pharmacy_id", p.ID).Str("item_id", item.ID).Msg("lote agregado")

	uc.publishSnapshot(ctx, p.ID)
	resp := toItemResponse(engine.ItemView{
		Item:         *item,
		Status:       engine.Evaluate(*item, uc.opts.Now()),
		DaysToExpiry: engine.DaysToExpiry(item.ExpiryDate, uc.opts.Now()),
	})
	return &resp, nil
}

// UpdateItem sobrescribe todos los campos mutables del lote (last writer wins).
// domain.ErrNotFound si el lote no existe en la farmacia del usuario.
func (uc *InventoryUseCase) UpdateItem(ctx context.Context, userID, itemID string, in dto.UpdateInventoryItemRequest) error {
	fields, err := parseFields(in.InventoryFieldsRequest, uc.opts.DefaultMinimumStock)
	if err != nil {
		return err
	}
	p, err := uc.requirePharmacy(ctx, userID)
	if err != nil {
		return err
	}
	if !isUUID(itemID) {
		return domain.ErrNotFound
	}
	if err := uc.repos.Inventory.Update(ctx, p.ID, itemID, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return domain.NewDataAccessError("update inventory", err)
	}
	uc.log.Info().Str("pharmacy_id", p.ID).Str("item_id", itemID).Msg("lote actualizado")

	uc.publishSnapshot(ctx, p.ID)
	return nil
}

// AddMedicine agrega un medicamento al catálogo. Marca y categoría deben existir.
func (uc *InventoryUseCase) AddMedicine(ctx context.Context, in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	name := strings.TrimSpace(in.Name)
	brandID := strings.TrimSpace(in.BrandID)
	categoryID := strings.TrimSpace(in.CategoryID)

	var bad []string
	if name == "" {
		bad = append(bad, "name")
	}
	if !isUUID(brandID) {
		bad = append(bad, "brand_id")
	}
	if !isUUID(categoryID) {
		bad = append(bad, "category_id")
	}
	if len(bad) > 0 {
		return nil, domain.NewValidationError("campos requeridos faltantes o inválidos", bad...)
	}

	brand, err := uc.repos.Brands.GetByID(ctx, brandID)
	if err != nil {
		return nil, domain.NewDataAccessError("get brand", err)
	}
	if brand == nil {
		return nil, domain.NewValidationError("marca inexistente", "brand_id")
	}
	category, err := uc.repos.Categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewDataAccessError("get category", err)
	}
	if category == nil {
		return nil, domain.NewValidationError("categoría inexistente", "category_id")
	}

	m := entity.Medicine{
		ID:                   uuid.New().String(),
		Name:                 name,
		GenericName:          strings.TrimSpace(in.GenericName),
		Dosage:               strings.TrimSpace(in.Dosage),
		Form:                 strings.TrimSpace(in.Form),
		BrandID:              brand.ID,
		BrandName:            brand.Name,
		CategoryID:           category.ID,
		CategoryName:         category.Name,
		RequiresPrescription: in.RequiresPrescription,
		CreatedAt:            uc.opts.Now(),
	}
	if err := uc.repos.Medicines.Create(ctx, &m); err != nil {
		return nil, domain.NewDataAccessError("insert medicine", err)
	}
	resp := toMedicineResponse(m)
	return &resp, nil
}

// View filtra los lotes del usuario y deriva estados y conteos para la fecha actual.
func (uc *InventoryUseCase) View(ctx context.Context, userID string, criteria engine.FilterCriteria) (*dto.InventoryViewResponse, error) {
	items, err := uc.FetchInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	ref := uc.opts.Now()
	return toViewResponse(engine.ComputeView(items, criteria, ref), criteria, ref), nil
}

// Subscription suscripción a los eventos de una farmacia con el snapshot inicial.
type Subscription struct {
	PharmacyID string
	Initial    CollectionReplaced
	Events     <-chan CollectionReplaced
	Cancel     func()
}

// Subscribe registra al usuario en los eventos de su farmacia. La suscripción se crea antes
// de leer el snapshot inicial para no perder escrituras intermedias.
func (uc *InventoryUseCase) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	if uc.broker == nil {
		return nil, errors.New("eventos de inventario deshabilitados")
	}
	p, err := uc.requirePharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	ch, cancel := uc.broker.Subscribe(p.ID)
	items, err := uc.repos.Inventory.ListByPharmacy(ctx, p.ID)
	if err != nil {
		cancel()
		return nil, domain.NewDataAccessError("list inventory", err)
	}
	return &Subscription{
		PharmacyID: p.ID,
		Initial:    CollectionReplaced{PharmacyID: p.ID, Items: items, At: uc.opts.Now()},
		Events:     ch,
		Cancel:     cancel,
	}, nil
}

// Now fecha de referencia actual del caso de uso.
func (uc *InventoryUseCase) Now() time.Time { return uc.opts.Now() }

// resolvePharmacy (nil, nil) si el usuario aún no configuró su farmacia.
func (uc *InventoryUseCase) resolvePharmacy(ctx context.Context, userID string) (*entity.Pharmacy, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	p, err := uc.repos.Pharmacies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewDataAccessError("get pharmacy", err)
	}
	return p, nil
}

func (uc *InventoryUseCase) requirePharmacy(ctx context.Context, userID string) (*entity.Pharmacy, error) {
	p, err := uc.resolvePharmacy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrSetupRequired
	}
	return p, nil
}

// publishSnapshot relee la colección completa y la publica. La escritura ya se confirmó:
// un fallo aquí sólo se registra.
func (uc *InventoryUseCase) publishSnapshot(ctx context.Context, pharmacyID string) {
	if uc.broker == nil {
		return
	}
	items, err := uc.repos.Inventory.ListByPharmacy(ctx, pharmacyID)
	if err != nil {
		uc.log.Warn().Err(err).Str("pharmacy_id", pharmacyID).Msg("no se pudo releer el inventario tras la escritura")
		return
	}
	uc.broker.Publish(CollectionReplaced{PharmacyID: pharmacyID, Items: items, At: uc.opts.Now()})
}
