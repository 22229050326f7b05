package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/gestock-api/internal/application/inventory"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (store y catálogo)
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	movements []entity.Movement
	appendErr error
	deleteErr error
}

func (s *fakeStore) Append(_ context.Context, m entity.Movement) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.movements = append(s.movements, m)
	return nil
}

func (s *fakeStore) All(_ context.Context) ([]entity.Movement, error) {
	return append([]entity.Movement(nil), s.movements...), nil
}

func (s *fakeStore) DeleteByID(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.movements[:0]
	for _, m := range s.movements {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.movements = kept
	return nil
}

func (s *fakeStore) Clear(_ context.Context) error {
	s.movements = nil
	return nil
}

type fakeCatalog struct {
	products  map[int]entity.Product
	updateErr error
	updated   map[int]int // id → última cantidad fijada
}

func newFakeCatalog(products ...entity.Product) *fakeCatalog {
	byID := make(map[int]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &fakeCatalog{products: byID, updated: make(map[int]int)}
}

func (c *fakeCatalog) GetProduct(_ context.Context, id int) (*entity.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (c *fakeCatalog) ListProducts(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

func (c *fakeCatalog) UpdateProductQuantity(_ context.Context, id, newQuantity int) error {
	if c.updateErr != nil {
		return c.updateErr
	}
	c.updated[id] = newQuantity
	return nil
}

func bolt() entity.Product {
	return entity.Product{ID: 7, Name: "Bolt", Quantity: 5, StockAlertThreshold: 10}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_AnexaConNombreDenormalizado(t *testing.T) {
	store := &fakeStore{}
	rec := inventory.NewRecorder(store, newFakeCatalog(bolt()))

	before := time.Now()
	result, err := rec.RecordEntry(context.Background(), inventory.EntryInput{
		ProductID: 7, Quantity: 50, Supplier: "Acier Dupont",
	})
	require.NoError(t, err)

	m := result.Movement
	assert.NotEmpty(t, m.ID, "el id se genera al crear")
	assert.Equal(t, entity.MovementTypeEntry, m.Type)
	assert.Equal(t, "Bolt", m.ProductName, "el nombre se instantánea del catálogo")
	assert.Equal(t, 50, m.Quantity)
	assert.Equal(t, "Acier Dupont", m.Supplier)
	assert.False(t, m.Date.Before(before), "sin fecha explícita se usa el momento del registro")
	assert.Equal(t, 5, result.OnHand, "la cantidad observada del catálogo acompaña al resultado")

	require.Len(t, store.movements, 1)
}

func TestRecordEntry_PermiteRetrodatar(t *testing.T) {
	rec := inventory.NewRecorder(&fakeStore{}, newFakeCatalog(bolt()))

	backdated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
	result, err := rec.RecordEntry(context.Background(), inventory.EntryInput{
		ProductID: 7, Quantity: 1, Date: &backdated,
	})

	require.NoError(t, err)
	assert.True(t, result.Movement.Date.Equal(backdated))
}

func TestRecordEntry_ProductoInexistente(t *testing.T) {
	store := &fakeStore{}
	rec := inventory.NewRecorder(store, newFakeCatalog())

	_, err := rec.RecordEntry(context.Background(), inventory.EntryInput{ProductID: 99, Quantity: 1})

	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
	assert.Empty(t, store.movements, "sin producto no se escribe nada en el libro")
}

func TestRecordEntry_ValidacionDeEntrada(t *testing.T) {
	store := &fakeStore{}
	rec := inventory.NewRecorder(store, newFakeCatalog(bolt()))
	ctx := context.Background()

	_, err := rec.RecordEntry(ctx, inventory.EntryInput{ProductID: 0, Quantity: 5})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "productId ausente")

	_, err = rec.RecordEntry(ctx, inventory.EntryInput{ProductID: 7, Quantity: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad cero")

	_, err = rec.RecordEntry(ctx, inventory.EntryInput{ProductID: 7, Quantity: -3})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad negativa")

	assert.Empty(t, store.movements, "la validación nunca escribe estado parcial")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordExit
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExit_StockInsuficiente_NoAnexa(t *testing.T) {
	store := &fakeStore{}
	rec := inventory.NewRecorder(store, newFakeCatalog(bolt())) // quantity = 5

	_, err := rec.RecordExit(context.Background(), inventory.ExitInput{ProductID: 7, Quantity: 100})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "disponible 5", "el error reporta lo disponible")
	assert.Contains(t, err.Error(), "solicitado 100", "el error reporta lo pedido")
	assert.Empty(t, store.movements, "el libro nunca registra una salida insatisfacible")
}

func TestRecordExit_CantidadExactaDisponible(t *testing.T) {
	store := &fakeStore{}
	rec := inventory.NewRecorder(store, newFakeCatalog(bolt()))

	result, err := rec.RecordExit(context.Background(), inventory.ExitInput{
		ProductID: 7, Quantity: 5, Receiver: "Atelier A", User: "Martin",
	})

	require.NoError(t, err, "sacar exactamente lo disponible es válido")
	assert.Equal(t, entity.MovementTypeExit, result.Movement.Type)
	assert.Equal(t, "Atelier A", result.Movement.Receiver)
	require.Len(t, store.movements, 1)
}

func TestRecordExit_FalloDeStorageSePropaga(t *testing.T) {
	store := &fakeStore{appendErr: domain.ErrStorageFailure}
	rec := inventory.NewRecorder(store, newFakeCatalog(bolt()))

	_, err := rec.RecordExit(context.Background(), inventory.ExitInput{ProductID: 7, Quantity: 1})

	assert.True(t, errors.Is(err, domain.ErrStorageFailure))
}
