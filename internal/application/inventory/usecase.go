package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (IN, OUT) de
// forma transaccional: bloqueo de fila del producto (SELECT FOR UPDATE),
// ajuste de stock y alta del movimiento en una sola transacción.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.InventoryMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso. movRepo (sin tx) se
// usa solo para lecturas.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.InventoryMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterMovement aplica el movimiento y ajusta el stock del producto como
// unidad atómica. Resultado: exactamente un movimiento nuevo y una mutación
// de stock, o ninguno de los dos.
//
// Reglas:
//   - producto inexistente -> domain.ErrNotFound, sin cambios
//   - IN: stock = stock + cantidad (sin tope superior)
//   - OUT con stock < cantidad -> domain.InsufficientStockError, sin cambios
//   - OUT: stock = stock - cantidad
//
// La cantidad llega validada (>= 1) desde la frontera HTTP; se re-verifica
// aquí para fallar cerrado si algún caller se salta la validación.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Quantity < 1 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
		_ repository.PurchaseOrderRepository,
	) error {
		// Bloquea la fila del producto para serializar salidas concurrentes
		// sobre el mismo producto.
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		switch in.Type {
		case entity.MovementTypeIn:
			newStock += in.Quantity
		case entity.MovementTypeOut:
			if product.Stock < in.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Current:     product.Stock,
					Requested:   in.Quantity,
				}
			}
			newStock -= in.Quantity
		}

		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		mov := &entity.InventoryMovement{
			ProductID: &product.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Date:      time.Now().UTC(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		out = &dto.MovementResponse{
			ID:          mov.ID,
			ProductID:   mov.ProductID,
			Type:        mov.Type,
			Quantity:    mov.Quantity,
			Date:        mov.Date,
			ProductName: product.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un movimiento por ID con el nombre del producto resuelto.
func (uc *RegisterMovementUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovementResponse(mov), nil
}

// List obtiene todos los movimientos, más reciente primero.
func (uc *RegisterMovementUseCase) List() ([]dto.MovementResponse, error) {
	movs, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		ProductName: m.ProductName,
	}
}
