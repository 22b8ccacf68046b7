package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Contact string `json:"contact" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=20"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor. El ID debe
// coincidir con el de la ruta.
type UpdateSupplierRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Contact string `json:"contact" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=20"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
