package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste el pedido (sin líneas) y asigna su ID.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (supplier_id, order_date, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.SupplierID, order.OrderDate, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de detalle y asigna su ID.
func (r *PurchaseOrderRepo) CreateLine(line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.OrderID, line.ProductID, line.Quantity,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByID obtiene el pedido con líneas, nombre del proveedor y nombre/precio
// de productos. Devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.supplier_id, o.order_date, o.status, o.created_at, COALESCE(s.name, '')
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.OrderDate, &o.Status, &o.CreatedAt, &o.SupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	lines, err := r.linesFor([]int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	return &o, nil
}

// List obtiene todos los pedidos con sus líneas resueltas.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.supplier_id, o.order_date, o.status, o.created_at, COALESCE(s.name, '')
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		ORDER BY o.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	var ids []int64
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.Status, &o.CreatedAt, &o.SupplierName); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	lines, err := r.linesFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Lines = lines[o.ID]
	}
	return list, nil
}

// UpdateStatus actualiza el estado de un pedido.
func (r *PurchaseOrderRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina un pedido; las líneas caen en cascada.
func (r *PurchaseOrderRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// linesFor carga las líneas de los pedidos indicados con nombre y precio de
// producto resueltos, agrupadas por pedido.
func (r *PurchaseOrderRepo) linesFor(orderIDs []int64) (map[int64][]entity.OrderLine, error) {
	query := `
		SELECT l.id, l.order_id, l.product_id, l.quantity, COALESCE(p.name, ''), p.price
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ANY($1)
		ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.OrderLine)
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.ProductName, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		if l.OrderID != nil {
			out[*l.OrderID] = append(out[*l.OrderID], l)
		}
	}
	return out, rows.Err()
}
