package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/inventory"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// InventoryUseCase registra recepciones de mercadería y expone el histórico.
type InventoryUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewInventoryUseCase crea el caso de uso de inventario.
func NewInventoryUseCase(repo repository.StateRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log}
}

// ReceiveStock registra una entrada de stock: crea el registro inmutable y
// aplica el delta positivo sobre el producto, escribiendo ambas colecciones.
func (uc *InventoryUseCase) ReceiveStock(req dto.StockEntryRequest) (*entity.StockEntry, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}

	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	found := false
	for _, p := range products {
		if p.ID == req.ProductID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}

	entry := entity.StockEntry{
		ID:         uuid.New().String(),
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		Date:       time.Now(),
		Cost:       req.Cost,
	}

	entries, err := uc.repo.StockEntries()
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	products = inventory.ApplyDelta(products, req.ProductID, req.Quantity)

	if err := uc.repo.SaveStockEntries(entries); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProducts(products); err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", req.ProductID).Int("quantity", req.Quantity).
		Msg("entrada de stock registrada")
	return &entry, nil
}

// ListEntries devuelve el histórico de entradas, de la más reciente a la más
// antigua.
func (uc *InventoryUseCase) ListEntries() ([]entity.StockEntry, error) {
	entries, err := uc.repo.StockEntries()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}
