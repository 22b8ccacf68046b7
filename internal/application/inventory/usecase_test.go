package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeStore estado en memoria compartido por los repos fake. El txRunner fake
// toma un snapshot antes de ejecutar el callback y lo restaura si falla,
// reproduciendo la semántica Commit/Rollback.
type fakeStore struct {
	products  map[int64]*entity.Product
	movements []*entity.InventoryMovement
	nextMovID int64

	failStockUpdate bool // inyecta fallo de almacenamiento en UpdateStock
	failMovCreate   bool // inyecta fallo de almacenamiento en Create
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[int64]*entity.Product), nextMovID: 1}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		products:  make(map[int64]*entity.Product, len(s.products)),
		movements: append([]*entity.InventoryMovement(nil), s.movements...),
		nextMovID: s.nextMovID,
	}
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.movements = snap.movements
	s.nextMovID = snap.nextMovID
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(*entity.Product) error { return errors.New("no usado") }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) List() ([]*entity.Product, error)             { return nil, nil }
func (r *fakeProductRepo) ListBelowMinStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                 { return errors.New("no usado") }
func (r *fakeProductRepo) UpdateStock(id int64, stock int64) error {
	if r.s.failStockUpdate {
		return errors.New("fallo de almacenamiento")
	}
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) Delete(int64) error { return errors.New("no usado") }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	if r.s.failMovCreate {
		return errors.New("fallo de almacenamiento")
	}
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}
func (r *fakeMovementRepo) GetByID(id int64) (*entity.InventoryMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeMovementRepo) List() ([]*entity.InventoryMovement, error) {
	out := make([]*entity.InventoryMovement, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		cp := *r.s.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOrderRepo struct{}

func (fakeOrderRepo) Create(*entity.PurchaseOrder) error              { return errors.New("no usado") }
func (fakeOrderRepo) CreateLine(*entity.OrderLine) error              { return errors.New("no usado") }
func (fakeOrderRepo) GetByID(int64) (*entity.PurchaseOrder, error)    { return nil, nil }
func (fakeOrderRepo) List() ([]*entity.PurchaseOrder, error)          { return nil, nil }
func (fakeOrderRepo) UpdateStatus(int64, string) error                { return errors.New("no usado") }
func (fakeOrderRepo) Delete(int64) error                              { return errors.New("no usado") }

// fakeTxRunner aplica la semántica transaccional sobre el fakeStore:
// snapshot al entrar, restore si el callback falla.
type fakeTxRunner struct {
	s         *fakeStore
	rollbacks int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeProductRepo{s: r.s}, &fakeMovementRepo{s: r.s}, fakeOrderRepo{})
	if err != nil {
		r.s.restore(snap)
		r.rollbacks++
		return err
	}
	return nil
}

func newUseCase(s *fakeStore) (*inventory.RegisterMovementUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{s: s}
	return inventory.NewRegisterMovementUseCase(runner, &fakeMovementRepo{s: s}), runner
}

func productWithStock(id, stock int64) *entity.Product {
	return &entity.Product{ID: id, Name: "Tornillos", Stock: stock}
}

// Escenario A: salida con stock suficiente descuenta y persiste el movimiento.
func TestRegisterMovement_SalidaConStockSuficiente(t *testing.T) {
	store := newFakeStore(productWithStock(1, 50))
	uc, _ := newUseCase(store)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeOut, Quantity: 10,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.EqualValues(t, 40, store.products[1].Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeOut, store.movements[0].Type)
	assert.EqualValues(t, 10, store.movements[0].Quantity)
	assert.Equal(t, "Tornillos", out.ProductName)
	assert.NotZero(t, out.ID)
	assert.False(t, out.Date.IsZero())
}

// Escenario B: salida mayor que el stock se rechaza sin persistir nada y el
// error cita el stock actual.
func TestRegisterMovement_SalidaStockInsuficiente(t *testing.T) {
	store := newFakeStore(productWithStock(1, 5))
	uc, runner := newUseCase(store)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeOut, Quantity: 10,
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.EqualValues(t, 5, insufficient.Current)
	assert.Contains(t, err.Error(), "Stock actual: 5")
	assert.Contains(t, err.Error(), "Tornillos")

	assert.EqualValues(t, 5, store.products[1].Stock)
	assert.Empty(t, store.movements)
	assert.Equal(t, 1, runner.rollbacks)
}

// Escenario C: producto inexistente -> ErrNotFound, sin escrituras.
func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	store := newFakeStore()
	uc, runner := newUseCase(store)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 999, Type: entity.MovementTypeIn, Quantity: 1,
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements)
	assert.Equal(t, 1, runner.rollbacks)
}

// Escenario D: entrada suma al stock sin tope superior.
func TestRegisterMovement_Entrada(t *testing.T) {
	store := newFakeStore(productWithStock(2, 20))
	uc, _ := newUseCase(store)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 2, Type: entity.MovementTypeIn, Quantity: 30,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 50, store.products[2].Stock)
	require.Len(t, store.movements, 1)
	assert.EqualValues(t, 30, out.Quantity)
	assert.Equal(t, entity.MovementTypeIn, out.Type)
}

// Atomicidad: si falla el alta del movimiento después de ajustar el stock,
// el rollback deja el stock intacto y no queda movimiento persistido.
func TestRegisterMovement_RollbackSiFallaPersistencia(t *testing.T) {
	store := newFakeStore(productWithStock(1, 50))
	store.failMovCreate = true
	uc, runner := newUseCase(store)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeOut, Quantity: 10,
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.EqualValues(t, 50, store.products[1].Stock, "el stock no debe reflejar el cambio tras rollback")
	assert.Empty(t, store.movements)
	assert.Equal(t, 1, runner.rollbacks)
}

// Atomicidad: fallo en la actualización de stock tampoco deja estado parcial.
func TestRegisterMovement_RollbackSiFallaStock(t *testing.T) {
	store := newFakeStore(productWithStock(1, 50))
	store.failStockUpdate = true
	uc, _ := newUseCase(store)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: 1, Type: entity.MovementTypeIn, Quantity: 10,
	})

	require.Error(t, err)
	assert.EqualValues(t, 50, store.products[1].Stock)
	assert.Empty(t, store.movements)
}

// Entradas inválidas fallan cerrado antes de abrir transacción.
func TestRegisterMovement_EntradaInvalida(t *testing.T) {
	store := newFakeStore(productWithStock(1, 50))
	uc, runner := newUseCase(store)

	cases := []dto.RegisterMovementRequest{
		{ProductID: 1, Type: entity.MovementTypeIn, Quantity: 0},
		{ProductID: 1, Type: entity.MovementTypeOut, Quantity: -5},
		{ProductID: 1, Type: "TRANSFER", Quantity: 10},
		{ProductID: 1, Type: "", Quantity: 10},
	}
	for _, in := range cases {
		_, err := uc.RegisterMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %+v", in)
	}
	assert.Equal(t, 0, runner.rollbacks, "no debe llegar a abrir transacción")
	assert.EqualValues(t, 50, store.products[1].Stock)
}

// Movimientos consecutivos mantienen el invariante stock = inicial + entradas - salidas.
func TestRegisterMovement_InvarianteAcumulado(t *testing.T) {
	store := newFakeStore(productWithStock(1, 100))
	uc, _ := newUseCase(store)

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeOut, 30},
		{entity.MovementTypeIn, 5},
		{entity.MovementTypeOut, 75},
		{entity.MovementTypeIn, 40},
	}
	for _, s := range steps {
		_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
			ProductID: 1, Type: s.typ, Quantity: s.qty,
		})
		require.NoError(t, err)
	}

	assert.EqualValues(t, 100-30+5-75+40, store.products[1].Stock)
	assert.Len(t, store.movements, 4)
}

func TestList_MasRecientePrimero(t *testing.T) {
	store := newFakeStore(productWithStock(1, 100))
	uc, _ := newUseCase(store)

	for i := 0; i < 3; i++ {
		_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
			ProductID: 1, Type: entity.MovementTypeIn, Quantity: 1,
		})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.EqualValues(t, 3, list[0].ID)
	assert.EqualValues(t, 1, list[2].ID)
}

func TestGetByID_NoExiste(t *testing.T) {
	store := newFakeStore()
	uc, _ := newUseCase(store)

	out, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out)
}
