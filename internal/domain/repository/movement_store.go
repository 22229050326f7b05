package repository

import (
	"context"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// MovementStore define el puerto de persistencia del libro de movimientos
// (log append-only con borrado explícito para correcciones).
//
// El store no valida contenido: eso es responsabilidad del Recorder. Solo
// falla cuando el medio de almacenamiento subyacente falla.
type MovementStore interface {
	// Append agrega un movimiento al final del log.
	Append(ctx context.Context, movement entity.Movement) error
	// All devuelve todos los movimientos en orden de inserción.
	All(ctx context.Context) ([]entity.Movement, error)
	// DeleteByID elimina el movimiento con ese id. Si no existe, no es error.
	DeleteByID(ctx context.Context, id string) error
	// Clear vacía el log por completo. Irreversible.
	Clear(ctx context.Context) error
}
