// Package memory implementa los puertos de almacenamiento sobre estructuras
// en memoria protegidas con mutex. No hay persistencia: el estado se siembra
// al arrancar y se pierde al detener el proceso.
package memory

import (
	"sync"
	"time"

	"github.com/greenroad/licorera-api/internal/domain"
	"github.com/greenroad/licorera-api/internal/domain/entity"
)

// ProductRepository lista en memoria con orden de inserción estable.
type ProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create asigna ID = max(ids)+1 (1 si la lista está vacía) y agrega al final.
func (r *ProductRepository) Create(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

// GetByID devuelve una copia del producto, o nil, nil si no existe.
func (r *ProductRepository) GetByID(id int) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo ID conservando su posición
// (último escritor gana, no hay control de versiones).
func (r *ProductRepository) Update(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			cp := *product
			cp.CreatedAt = p.CreatedAt
			cp.UpdatedAt = time.Now()
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el registro si existe; un ID inexistente no es error.
func (r *ProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
