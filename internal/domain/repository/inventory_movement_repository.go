package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para movimientos.
// Solo inserción y lectura: los movimientos son inmutables.
type InventoryMovementRepository interface {
	// Create persiste el movimiento y asigna su ID.
	Create(movement *entity.InventoryMovement) error
	// GetByID obtiene un movimiento con el nombre del producto resuelto.
	GetByID(id int64) (*entity.InventoryMovement, error)
	// List obtiene todos los movimientos, más reciente primero, con el
	// nombre del producto resuelto.
	List() ([]*entity.InventoryMovement, error)
}
