package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Consultas nombradas y de propósito fijo; sin predicados genéricos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListBelowMinStock productos con stock por debajo de su mínimo (default 10).
	ListBelowMinStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto (usado por el motor de movimientos).
	UpdateStock(id int64, stock int64) error
	Delete(id int64) error
}
