package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold unidades en inventario a partir de las cuales un producto
// se considera en stock bajo (alertas del panel y badge del catálogo).
const LowStockThreshold = 5

// Product representa una botella del inventario de la licorería.
// El ID es numérico y se asigna como max(ids existentes)+1; Stock se edita
// directamente desde el panel de administración (no hay movimientos).
type Product struct {
	ID          int
	Name        string
	Category    string          // una de AdminCategories
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de adquisición
	Stock       int
	Description string
	Image       string // URL o data URL embebido
	ABV         string // graduación alcohólica, ej. "40%"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el producto está en el umbral de alerta.
func (p *Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}
