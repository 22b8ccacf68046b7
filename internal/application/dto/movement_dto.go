package dto

import "time"

// RegisterMovementRequest body para POST /api/movimientos.
// Type fuera de {IN, OUT} se rechaza en la frontera y no llega al motor.
type RegisterMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required,min=1"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// MovementResponse salida de un movimiento con el nombre del producto resuelto.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   *int64    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"product_name,omitempty"`
}
