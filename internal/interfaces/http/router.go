package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	OrderUC          *usecase.OrderUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Validator        *validator.Validator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.Validator)
	products.Get("/", productHandler.List)
	products.Get("/stock-bajo", productHandler.ListBelowMinStock)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Proveedores
	suppliers := api.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Validator)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Pedidos a proveedores
	orders := api.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Validator)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/estado", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Movimientos de inventario
	movements := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.Validator)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/:id", movementHandler.GetByID)
}
