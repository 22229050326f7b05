// Package inventory contiene los casos de uso de escritura del libro de
// movimientos: el Recorder (validar + anexar) y el servicio de registro que
// reconcilia el libro con la cantidad viva del catálogo.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// EntryInput es la entrada para registrar una entrada de stock.
// Date en nil se defaultea al momento del registro; el llamador puede
// retrodatar pasando una fecha explícita.
type EntryInput struct {
	ProductID int
	Quantity  int
	Date      *time.Time
	Reference string
	Supplier  string
	Reason    string
	Notes     string
}

// ExitInput es la entrada para registrar una salida de stock.
type ExitInput struct {
	ProductID int
	Quantity  int
	Date      *time.Time
	Receiver  string
	User      string
	Purpose   string
	Notes     string
}

// RecordResult es el resultado de una operación del Recorder: el movimiento
// anexado y la cantidad en catálogo observada durante la validación (la usa
// el servicio de registro para calcular la nueva cantidad).
type RecordResult struct {
	Movement entity.Movement
	OnHand   int
}

// Recorder orquesta la creación de movimientos: valida la entrada, consulta
// el catálogo para denormalizar el nombre del producto (y validar stock en
// salidas), asigna id y fecha, y anexa al store.
//
// El Recorder NUNCA muta la cantidad del catálogo; eso es responsabilidad
// del RegisterService como paso separado.
type Recorder struct {
	store   repository.MovementStore
	catalog repository.CatalogGateway
}

// NewRecorder construye el recorder.
func NewRecorder(store repository.MovementStore, catalog repository.CatalogGateway) *Recorder {
	return &Recorder{store: store, catalog: catalog}
}

// RecordEntry valida y anexa una entrada de stock al libro de movimientos.
func (r *Recorder) RecordEntry(ctx context.Context, in EntryInput) (*RecordResult, error) {
	if err := validate(in.ProductID, in.Quantity); err != nil {
		return nil, err
	}
	product, err := r.catalog.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	m := entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name, // instantánea para el historial
		Type:        entity.MovementTypeEntry,
		Quantity:    in.Quantity,
		Date:        movementDate(in.Date),
		Reference:   in.Reference,
		Supplier:    in.Supplier,
		Reason:      in.Reason,
		Notes:       in.Notes,
	}
	if err := r.store.Append(ctx, m); err != nil {
		return nil, err
	}
	return &RecordResult{Movement: m, OnHand: product.Quantity}, nil
}

// RecordExit valida y anexa una salida de stock. Rechaza con
// ErrInsufficientStock si la cantidad pedida supera la existencia actual del
// catálogo, de modo que el libro nunca registra una salida que el catálogo
// no podía satisfacer al momento de la verificación.
func (r *Recorder) RecordExit(ctx context.Context, in ExitInput) (*RecordResult, error) {
	if err := validate(in.ProductID, in.Quantity); err != nil {
		return nil, err
	}
	product, err := r.catalog.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if in.Quantity > product.Quantity {
		return nil, fmt.Errorf("%w: disponible %d, solicitado %d",
			domain.ErrInsufficientStock, product.Quantity, in.Quantity)
	}

	m := entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        entity.MovementTypeExit,
		Quantity:    in.Quantity,
		Date:        movementDate(in.Date),
		Receiver:    in.Receiver,
		User:        in.User,
		Purpose:     in.Purpose,
		Notes:       in.Notes,
	}
	if err := r.store.Append(ctx, m); err != nil {
		return nil, err
	}
	return &RecordResult{Movement: m, OnHand: product.Quantity}, nil
}

func validate(productID, quantity int) error {
	if productID <= 0 {
		return fmt.Errorf("%w: productId requerido", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	return nil
}

func movementDate(date *time.Time) time.Time {
	if date != nil {
		return *date
	}
	return time.Now()
}
