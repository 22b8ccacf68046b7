package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	// Create persiste el pedido y asigna su ID. No persiste las líneas.
	Create(order *entity.PurchaseOrder) error
	// CreateLine persiste una línea de detalle y asigna su ID.
	CreateLine(line *entity.OrderLine) error
	// GetByID obtiene el pedido con sus líneas, nombre del proveedor y
	// nombre/precio de los productos resueltos.
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// List obtiene todos los pedidos con sus líneas resueltas.
	List() ([]*entity.PurchaseOrder, error)
	UpdateStatus(id int64, status string) error
	// Delete elimina el pedido; las líneas caen en cascada (FK ON DELETE CASCADE).
	Delete(id int64) error
}
