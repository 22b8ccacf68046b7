package entity

import "time"

// Supplier representa un proveedor.
type Supplier struct {
	ID        int64
	Name      string
	Contact   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
