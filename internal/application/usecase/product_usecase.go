package usecase

import (
	"strings"

	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del inventario de administración.
// Opera sobre la lista completa sin filtrar; el catálogo público tiene su
// propio caso de uso de solo lectura.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validate reglas comunes de alta y edición: nombre no vacío, categoría del
// conjunto administrable, precio positivo, stock y costo no negativos.
func validate(in dto.CreateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Category) {
		return domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Cost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un producto. El repositorio asigna el ID (max+1).
// Campos requeridos faltantes devuelven ErrInvalidInput: aquí la validación
// fallida se reporta, no se ignora en silencio.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		Description: in.Description,
		Image:       in.Image,
		ABV:         in.ABV,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update reemplaza la ficha completa del producto (el panel edita todos los
// campos a la vez; último escritor gana). nil, nil si el ID no existe.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(dto.CreateProductRequest(in)); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	product := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		Description: in.Description,
		Image:       in.Image,
		ABV:         in.ABV,
		CreatedAt:   existing.CreatedAt,
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Idempotente: un ID inexistente no es error.
func (uc *ProductUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List lista el inventario completo en orden de inserción.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Description: p.Description,
		Image:       p.Image,
		ABV:         p.ABV,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
