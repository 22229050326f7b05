package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/inventory"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/movement"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos
// (registro, consulta filtrada y correcciones).
type MovementHandler struct {
	register *inventory.RegisterService
	ledger   *inventory.LedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterService, ledger *inventory.LedgerUseCase) *MovementHandler {
	return &MovementHandler{register: register, ledger: ledger}
}

// RecordEntry godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEntryRequest  true  "product_id, quantity, date (opcional), reference, supplier, reason, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movements/entries [post]
func (h *MovementHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.RecordEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.register.RegisterEntry(c.Context(), inventory.EntryInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      in.Date,
		Reference: in.Reference,
		Supplier:  in.Supplier,
		Reason:    in.Reason,
		Notes:     in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(*m))
}

// RecordExit godoc
// @Summary      Registrar salida de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordExitRequest  true  "product_id, quantity, date (opcional), receiver, user, purpose, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movements/exits [post]
func (h *MovementHandler) RecordExit(c *fiber.Ctx) error {
	var in dto.RecordExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.register.RegisterExit(c.Context(), inventory.ExitInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      in.Date,
		Receiver:  in.Receiver,
		User:      in.User,
		Purpose:   in.Purpose,
		Notes:     in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(*m))
}

// List godoc
// @Summary      Listar movimientos filtrados
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio inclusivo (RFC 3339 o YYYY-MM-DD); solo aplica junto a end_date"
// @Param        end_date    query  string  false  "Fin inclusivo"
// @Param        product_id  query  int     false  "Id de producto"
// @Param        type        query  string  false  "ENTREE o SORTIE"
// @Param        user        query  string  false  "Subcadena sobre user o receiver"
// @Param        search      query  string  false  "Subcadena sobre producto, referencia, proveedor o notas"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	spec := movement.FilterSpec{
		ProductID:  in.ProductID,
		Type:       in.Type,
		User:       in.User,
		SearchTerm: in.SearchTerm,
	}
	if in.StartDate != "" && in.EndDate != "" {
		start, err := parseDate(in.StartDate, false)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "start_date inválida"})
		}
		end, err := parseDate(in.EndDate, true)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "end_date inválida"})
		}
		spec.StartDate, spec.EndDate = start, end
	}

	list, err := h.ledger.List(c.Context(), spec)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromMovements(list))
}

// Delete godoc
// @Summary      Eliminar un movimiento (corrección)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Id del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	// Id ausente también responde ok: el borrado es idempotente.
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

// Clear godoc
// @Summary      Vaciar el libro de movimientos (reinicio)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/movements [delete]
func (h *MovementHandler) Clear(c *fiber.Ctx) error {
	if err := h.ledger.Clear(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "libro de movimientos vaciado"})
}

// parseDate acepta RFC 3339 o fecha sola (YYYY-MM-DD). Una fecha sola usada
// como fin de rango se extiende al último instante del día para mantener la
// semántica inclusiva.
func parseDate(s string, endOfRange bool) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfRange {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// writeError mapea errores de dominio a códigos HTTP. Todo error viaja al
// llamador como mensaje distinguible; no hay reintentos ni silenciamiento.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrUnreconciled):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UNRECONCILED", Message: err.Error()})
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CATALOG_UNAVAILABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_FAILURE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
