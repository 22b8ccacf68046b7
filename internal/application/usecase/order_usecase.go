package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos a proveedores. La creación es
// transaccional: cabecera y líneas se insertan en una sola transacción.
type OrderUseCase struct {
	txRunner     inventory.TxRunner
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner inventory.TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// Create crea un pedido con sus líneas en una sola transacción. El proveedor
// y los productos de cada línea deben existir (domain.ErrNotFound si no).
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := time.Parse("2006-01-02", in.OrderDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range in.Lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	var orderID int64
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.InventoryMovementRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order := &entity.PurchaseOrder{
			SupplierID: &in.SupplierID,
			OrderDate:  orderDate,
			Status:     in.Status,
			CreatedAt:  time.Now().UTC(),
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, lineIn := range in.Lines {
			productID := lineIn.ProductID
			line := &entity.OrderLine{
				OrderID:   &order.ID,
				ProductID: &productID,
				Quantity:  lineIn.Quantity,
			}
			if err := orderRepo.CreateLine(line); err != nil {
				return err
			}
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Releer con líneas y nombres resueltos para la respuesta.
	return uc.GetByID(orderID)
}

// GetByID obtiene un pedido con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List obtiene todos los pedidos con sus líneas.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus actualiza el estado de un pedido.
func (uc *OrderUseCase) UpdateStatus(id int64, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

// Delete elimina un pedido y sus líneas (cascada en BD).
func (uc *OrderUseCase) Delete(id int64) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:          l.ID,
			OrderID:     l.OrderID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		OrderDate:    o.OrderDate.Format("2006-01-02"),
		Status:       o.Status,
		SupplierName: o.SupplierName,
		Lines:        lines,
	}
}
