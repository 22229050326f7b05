package inventory

import (
	"context"

	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/movement"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// LedgerUseCase expone la lectura filtrada del libro de movimientos y las
// operaciones de corrección (borrado individual y reinicio completo).
type LedgerUseCase struct {
	store repository.MovementStore
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(store repository.MovementStore) *LedgerUseCase {
	return &LedgerUseCase{store: store}
}

// List devuelve los movimientos que satisfacen spec, en fecha descendente.
func (uc *LedgerUseCase) List(ctx context.Context, spec movement.FilterSpec) ([]entity.Movement, error) {
	all, err := uc.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return movement.Filter(all, spec), nil
}

// Delete elimina un movimiento por id (corrección: borrar + re-crear).
func (uc *LedgerUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteByID(ctx, id)
}

// Clear vacía el libro de movimientos por completo.
func (uc *LedgerUseCase) Clear(ctx context.Context) error {
	return uc.store.Clear(ctx)
}
