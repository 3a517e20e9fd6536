package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO métricas del panel, recalculadas en cada petición
// sobre la lista viva de productos.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	TotalValue    decimal.Decimal `json:"total_value"`     // Σ precio×stock
	LowStockCount int             `json:"low_stock_count"` // productos con stock ≤ umbral
	TotalProfit   decimal.Decimal `json:"total_profit"`    // Σ (precio−costo)×stock
}
