// Package catalog contiene el caso de uso de la vitrina pública: una vista
// filtrada de solo lectura sobre el inventario.
package catalog

import (
	"strings"

	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
)

// CatalogUseCase búsqueda y filtros de la vitrina.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Search devuelve los productos visibles en vitrina: coincide la búsqueda en
// nombre o descripción (sin distinguir mayúsculas), coincide la categoría
// (o el comodín "All") y hay existencias. Mantiene el orden de inserción.
// Un query vacío coincide con todo; una categoría vacía equivale a "All".
func (uc *CatalogUseCase) Search(query, category string) (*dto.CatalogResponse, error) {
	if category == "" {
		category = entity.CatalogCategoryAll
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, p := range list {
		if p.Stock <= 0 {
			continue
		}
		if category != entity.CatalogCategoryAll && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		items = append(items, dto.CatalogItemResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Stock:       p.Stock,
			Description: p.Description,
			Image:       p.Image,
			ABV:         p.ABV,
			LowStock:    p.LowStock(),
		})
	}

	return &dto.CatalogResponse{Items: items, Query: query, Category: category}, nil
}

// Categories devuelve los filtros de la vitrina (incluye "All").
func (uc *CatalogUseCase) Categories() *dto.CategoriesResponse {
	out := make([]string, len(entity.CatalogCategories))
	copy(out, entity.CatalogCategories)
	return &dto.CategoriesResponse{Categories: out}
}
