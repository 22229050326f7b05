package inventory

import (
	"context"
	"fmt"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
	"github.com/gestock/gestock-api/pkg/logger"
)

// RegisterService refleja un movimiento en el libro Y en la cantidad viva del
// catálogo, como saga de dos pasos con compensación explícita:
//
//  1. Recorder anexa el movimiento al libro.
//  2. Se actualiza la cantidad en el catálogo (entrada suma, salida resta).
//
// Si el paso 2 falla, se compensa borrando el movimiento anexado. Si la
// compensación también falla, el movimiento queda sin reconciliar y se
// reporta con ErrUnreconciled — nunca se deja la inconsistencia implícita.
//
// No hay transacción que abarque ambos medios: el catálogo sigue siendo el
// dueño autoritativo de la cantidad y el libro es traza de auditoría.
type RegisterService struct {
	recorder *Recorder
	store    repository.MovementStore
	catalog  repository.CatalogGateway
	log      *logger.Logger
}

// NewRegisterService construye el servicio de registro.
func NewRegisterService(
	recorder *Recorder,
	store repository.MovementStore,
	catalog repository.CatalogGateway,
	log *logger.Logger,
) *RegisterService {
	return &RegisterService{recorder: recorder, store: store, catalog: catalog, log: log}
}

// RegisterEntry registra una entrada y suma la cantidad al catálogo.
func (s *RegisterService) RegisterEntry(ctx context.Context, in EntryInput) (*entity.Movement, error) {
	result, err := s.recorder.RecordEntry(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, result, result.OnHand+result.Movement.Quantity)
}

// RegisterExit registra una salida y resta la cantidad al catálogo.
func (s *RegisterService) RegisterExit(ctx context.Context, in ExitInput) (*entity.Movement, error) {
	result, err := s.recorder.RecordExit(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, result, result.OnHand-result.Movement.Quantity)
}

// reconcile ejecuta el paso 2 de la saga y compensa si falla.
func (s *RegisterService) reconcile(ctx context.Context, result *RecordResult, newQuantity int) (*entity.Movement, error) {
	m := result.Movement
	if err := s.catalog.UpdateProductQuantity(ctx, m.ProductID, newQuantity); err != nil {
		if delErr := s.store.DeleteByID(ctx, m.ID); delErr != nil {
			s.log.Error().
				Str("movement_id", m.ID).
				Int("product_id", m.ProductID).
				AnErr("update_err", err).
				AnErr("compensation_err", delErr).
				Msg("movimiento sin reconciliar: falló la actualización del catálogo y la compensación")
			return nil, fmt.Errorf("%w: movimiento %s: %v", domain.ErrUnreconciled, m.ID, err)
		}
		s.log.Warn().
			Str("movement_id", m.ID).
			Int("product_id", m.ProductID).
			Err(err).
			Msg("actualización de catálogo fallida, movimiento compensado (borrado)")
		return nil, err
	}
	return &m, nil
}
