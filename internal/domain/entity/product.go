package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMinimoDefault umbral de stock mínimo cuando el producto no define uno.
const StockMinimoDefault int64 = 10

// Product representa un producto del inventario.
// Stock se modifica vía movimientos de inventario o edición directa;
// nunca puede quedar negativo (el motor de movimientos lo garantiza).
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, > 0
	Category    string
	Stock       int64 // cantidad en inventario, >= 0
	MinStock    int64 // stock mínimo para alertas de reposición (default 10)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinStock indica si el producto está por debajo de su stock mínimo.
func (p *Product) BelowMinStock() bool {
	min := p.MinStock
	if min <= 0 {
		min = StockMinimoDefault
	}
	return p.Stock < min
}
