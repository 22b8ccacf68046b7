package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido a proveedor.
const (
	OrderStatusPending   = "PENDING"   // pendiente
	OrderStatusShipped   = "SHIPPED"   // enviado
	OrderStatusDelivered = "DELIVERED" // entregado
)

// ValidOrderStatus verifica que el estado sea uno de los permitidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// PurchaseOrder representa un pedido a proveedor con sus líneas de detalle.
type PurchaseOrder struct {
	ID         int64
	SupplierID *int64
	OrderDate  time.Time // solo fecha, sin hora
	Status     string
	Lines      []OrderLine
	// SupplierName se resuelve con JOIN al listar; no se persiste.
	SupplierName string
	CreatedAt    time.Time
}

// OrderLine representa una línea de detalle de un pedido.
type OrderLine struct {
	ID        int64
	OrderID   *int64
	ProductID *int64
	Quantity  int64
	// Resueltos con JOIN para presentación.
	ProductName string
	UnitPrice   *decimal.Decimal
}
