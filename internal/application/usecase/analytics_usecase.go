package usecase

import (
	"time"

	"github.com/hspsystem/gestor-api/internal/domain/metrics"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// topProductsLimit tamaño del ranking de más vendidos.
const topProductsLimit = 10

// AnalyticsUseCase calcula las cifras de dashboard y reportes. Todo se
// deriva al momento desde las colecciones persistidas.
type AnalyticsUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewAnalyticsUseCase crea el caso de uso de analítica.
func NewAnalyticsUseCase(repo repository.StateRepository, log *logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, log: log}
}

// Summary calcula el resumen del dashboard.
func (uc *AnalyticsUseCase) Summary() (*metrics.DashboardSummary, error) {
	orders, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	s := metrics.Summary(orders, products, events, time.Now())
	return &s, nil
}

// MonthlyRevenue serie de facturación por mes calendario.
func (uc *AnalyticsUseCase) MonthlyRevenue() ([]metrics.MonthlyPoint, error) {
	orders, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	return metrics.MonthlyRevenue(orders), nil
}

// TopProducts ranking de los diez productos más vendidos por cantidad.
func (uc *AnalyticsUseCase) TopProducts() ([]metrics.ProductRank, error) {
	orders, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	return metrics.TopProducts(orders, topProductsLimit), nil
}

// StockSnapshot niveles de stock actuales, una fila por producto.
func (uc *AnalyticsUseCase) StockSnapshot() ([]metrics.StockLevel, error) {
	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	return metrics.StockSnapshot(products), nil
}
