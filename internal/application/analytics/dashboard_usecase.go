// Package analytics contiene el caso de uso de métricas del panel de
// administración.
package analytics

import (
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase resume el inventario vivo en cada petición.
//
// No hay agregados precalculados ni caché: la lista es pequeña y las métricas
// deben reflejar la última escritura del panel.
type DashboardUseCase struct {
	repo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary calcula las cuatro métricas del panel:
//
//	total_products  = |inventario|
//	total_value     = Σ precio × stock
//	low_stock_count = |{p : stock ≤ umbral}|
//	total_profit    = Σ (precio − costo) × stock
//
// Los montos se redondean a 2 decimales.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	totalProfit := decimal.Zero
	lowStock := 0
	for _, p := range list {
		stock := decimal.NewFromInt(int64(p.Stock))
		totalValue = totalValue.Add(p.Price.Mul(stock))
		totalProfit = totalProfit.Add(p.Price.Sub(p.Cost).Mul(stock))
		if p.Stock <= entity.LowStockThreshold {
			lowStock++
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: len(list),
		TotalValue:    totalValue.Round(2),
		LowStockCount: lowStock,
		TotalProfit:   totalProfit.Round(2),
	}, nil
}
