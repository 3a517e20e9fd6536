package dto

import "github.com/shopspring/decimal"

// CatalogItemResponse producto visible en la vitrina pública.
// No expone Cost: el costo de adquisición es interno de administración.
type CatalogItemResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	ABV         string          `json:"abv"`
	LowStock    bool            `json:"low_stock"`
}

// CatalogResponse resultado del filtro de la vitrina.
type CatalogResponse struct {
	Items    []CatalogItemResponse `json:"items"`
	Query    string                `json:"query"`
	Category string                `json:"category"`
}

// CategoriesResponse filtros de categoría de la vitrina.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
