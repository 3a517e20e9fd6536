package repository

import (
	"github.com/greenroad/licorera-api/internal/domain/entity"
)

// ProductRepository define el puerto de almacenamiento para Product (DIP).
// La única implementación actual es en memoria; el inventario vive y muere
// con el proceso.
type ProductRepository interface {
	// Create asigna ID (max existente + 1) y agrega al final de la lista.
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id int) (*entity.Product, error)
	// Update reemplaza el registro con el mismo ID. ErrNotFound si no existe.
	Update(product *entity.Product) error
	// Delete es idempotente: eliminar un ID inexistente no es error.
	Delete(id int) error
	// List devuelve todos los productos en orden de inserción.
	List() ([]*entity.Product, error)
}
