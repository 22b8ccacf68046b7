package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// Fakes mínimos: un producto en memoria con semántica de rollback por snapshot.

type memProduct struct {
	product   *entity.Product
	movements []*entity.InventoryMovement
}

type memProductRepo struct{ m *memProduct }

func (r *memProductRepo) Create(*entity.Product) error { return errors.New("no usado") }
func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	if r.m.product == nil || r.m.product.ID != id {
		return nil, nil
	}
	cp := *r.m.product
	return &cp, nil
}
func (r *memProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProductRepo) List() ([]*entity.Product, error)                   { return nil, nil }
func (r *memProductRepo) ListBelowMinStock() ([]*entity.Product, error)      { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                       { return errors.New("no usado") }
func (r *memProductRepo) UpdateStock(id int64, stock int64) error {
	r.m.product.Stock = stock
	return nil
}
func (r *memProductRepo) Delete(int64) error { return errors.New("no usado") }

type memMovementRepo struct{ m *memProduct }

func (r *memMovementRepo) Create(mov *entity.InventoryMovement) error {
	mov.ID = int64(len(r.m.movements) + 1)
	cp := *mov
	r.m.movements = append(r.m.movements, &cp)
	return nil
}
func (r *memMovementRepo) GetByID(id int64) (*entity.InventoryMovement, error) {
	for _, mov := range r.m.movements {
		if mov.ID == id {
			cp := *mov
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) List() ([]*entity.InventoryMovement, error) { return nil, nil }

type memOrderRepo struct{}

func (memOrderRepo) Create(*entity.PurchaseOrder) error           { return errors.New("no usado") }
func (memOrderRepo) CreateLine(*entity.OrderLine) error           { return errors.New("no usado") }
func (memOrderRepo) GetByID(int64) (*entity.PurchaseOrder, error) { return nil, nil }
func (memOrderRepo) List() ([]*entity.PurchaseOrder, error)       { return nil, nil }
func (memOrderRepo) UpdateStatus(int64, string) error             { return errors.New("no usado") }
func (memOrderRepo) Delete(int64) error                           { return errors.New("no usado") }

type memTxRunner struct{ m *memProduct }

func (r *memTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.InventoryMovementRepository,
	repository.PurchaseOrderRepository,
) error) error {
	var snap *entity.Product
	if r.m.product != nil {
		cp := *r.m.product
		snap = &cp
	}
	movSnap := append([]*entity.InventoryMovement(nil), r.m.movements...)
	if err := fn(&memProductRepo{m: r.m}, &memMovementRepo{m: r.m}, memOrderRepo{}); err != nil {
		r.m.product = snap
		r.m.movements = movSnap
		return err
	}
	return nil
}

func newTestApp(m *memProduct) *fiber.App {
	uc := inventory.NewRegisterMovementUseCase(&memTxRunner{m: m}, &memMovementRepo{m: m})
	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: uc,
		Validator:        validator.New(),
	})
	return app
}

func postMovement(t *testing.T, app *fiber.App, body string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, "/api/movimientos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPostMovimiento_SalidaOK(t *testing.T) {
	m := &memProduct{product: &entity.Product{ID: 1, Name: "Cemento", Stock: 50}}
	app := newTestApp(m)

	resp := postMovement(t, app, `{"product_id":1,"type":"OUT","quantity":10}`)

	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "OUT", body["type"])
	assert.Equal(t, "Cemento", body["product_name"])
	assert.EqualValues(t, 50-10, m.product.Stock)
	assert.Len(t, m.movements, 1)
}

func TestPostMovimiento_StockInsuficiente(t *testing.T) {
	m := &memProduct{product: &entity.Product{ID: 1, Name: "Cemento", Stock: 5}}
	app := newTestApp(m)

	resp := postMovement(t, app, `{"product_id":1,"type":"OUT","quantity":10}`)

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Contains(t, body["message"], "Stock actual: 5")
	assert.EqualValues(t, 5, m.product.Stock, "el stock no debe cambiar")
	assert.Empty(t, m.movements)
}

func TestPostMovimiento_ProductoInexistente(t *testing.T) {
	m := &memProduct{}
	app := newTestApp(m)

	resp := postMovement(t, app, `{"product_id":999,"type":"IN","quantity":1}`)

	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Empty(t, m.movements)
}

func TestPostMovimiento_Entrada(t *testing.T) {
	m := &memProduct{product: &entity.Product{ID: 2, Name: "Arena", Stock: 20}}
	app := newTestApp(m)

	resp := postMovement(t, app, `{"product_id":2,"type":"IN","quantity":30}`)

	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 50, m.product.Stock)
}

// El tipo de movimiento se valida en la frontera: nunca llega al motor.
func TestPostMovimiento_TipoInvalido(t *testing.T) {
	m := &memProduct{product: &entity.Product{ID: 1, Name: "Cemento", Stock: 50}}
	app := newTestApp(m)

	for _, body := range []string{
		`{"product_id":1,"type":"TRANSFER","quantity":10}`,
		`{"product_id":1,"type":"","quantity":10}`,
		`{"product_id":1,"type":"OUT","quantity":0}`,
		`{"product_id":1,"type":"OUT"}`,
		`{"type":"OUT","quantity":10}`,
	} {
		resp := postMovement(t, app, body)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
	assert.EqualValues(t, 50, m.product.Stock)
	assert.Empty(t, m.movements)
}

func TestGetMovimiento_NoExiste(t *testing.T) {
	app := newTestApp(&memProduct{})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/movimientos/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}
