package dto

import "github.com/shopspring/decimal"

// CreateOrderLineRequest línea de detalle al crear un pedido.
type CreateOrderLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido a proveedor.
type CreateOrderRequest struct {
	SupplierID int64                    `json:"supplier_id" validate:"required,min=1"`
	OrderDate  string                   `json:"order_date" validate:"required"` // YYYY-MM-DD
	Status     string                   `json:"status" validate:"required,oneof=PENDING SHIPPED DELIVERED"`
	Lines      []CreateOrderLineRequest `json:"lines" validate:"dive"`
}

// UpdateOrderStatusRequest entrada para actualizar el estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SHIPPED DELIVERED"`
}

// OrderLineResponse línea de detalle en respuestas.
type OrderLineResponse struct {
	ID          int64            `json:"id"`
	OrderID     *int64           `json:"order_id"`
	ProductID   *int64           `json:"product_id"`
	Quantity    int64            `json:"quantity"`
	ProductName string           `json:"product_name,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID           int64               `json:"id"`
	SupplierID   *int64              `json:"supplier_id"`
	OrderDate    string              `json:"order_date"`
	Status       string              `json:"status"`
	SupplierName string              `json:"supplier_name,omitempty"`
	Lines        []OrderLineResponse `json:"lines"`
}
