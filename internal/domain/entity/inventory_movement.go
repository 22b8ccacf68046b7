package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "IN"  // entrada
	MovementTypeOut = "OUT" // salida
)

// ValidMovementType verifica que el tipo sea IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// InventoryMovement representa un movimiento de inventario (entrada o salida).
// Inmutable una vez creado: el motor solo agrega movimientos, nunca los
// actualiza ni elimina.
type InventoryMovement struct {
	ID        int64
	ProductID *int64 // nullable en almacenamiento; obligatorio al crear
	Type      string
	Quantity  int64 // siempre > 0; el tipo indica la dirección
	Date      time.Time
	// ProductName se resuelve con JOIN al listar; no se persiste.
	ProductName string
}
