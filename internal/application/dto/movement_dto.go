package dto

import (
	"time"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// RecordEntryRequest body para POST /api/movements/entries.
// date es opcional: ausente = ahora; el operador puede retrodatar.
type RecordEntryRequest struct {
	ProductID int        `json:"product_id" validate:"required,gt=0"`
	Quantity  int        `json:"quantity" validate:"required,gt=0"`
	Date      *time.Time `json:"date,omitempty"`
	Reference string     `json:"reference,omitempty"`
	Supplier  string     `json:"supplier,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// RecordExitRequest body para POST /api/movements/exits.
type RecordExitRequest struct {
	ProductID int        `json:"product_id" validate:"required,gt=0"`
	Quantity  int        `json:"quantity" validate:"required,gt=0"`
	Date      *time.Time `json:"date,omitempty"`
	Receiver  string     `json:"receiver,omitempty"`
	User      string     `json:"user,omitempty"`
	Purpose   string     `json:"purpose,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// ListMovementsRequest query params para GET /api/movements. Los campos
// ausentes se ignoran; start_date y end_date solo aplican juntos.
type ListMovementsRequest struct {
	StartDate  string `query:"start_date"` // RFC 3339 o YYYY-MM-DD
	EndDate    string `query:"end_date"`
	ProductID  int    `query:"product_id"`
	Type       string `query:"type"` // ENTREE | SORTIE
	User       string `query:"user"`
	SearchTerm string `query:"search"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Reference   string    `json:"reference,omitempty"`
	Supplier    string    `json:"supplier,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Receiver    string    `json:"receiver,omitempty"`
	User        string    `json:"user,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// FromMovement mapea la entidad al DTO de salida.
func FromMovement(m entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Reference:   m.Reference,
		Supplier:    m.Supplier,
		Reason:      m.Reason,
		Receiver:    m.Receiver,
		User:        m.User,
		Purpose:     m.Purpose,
		Notes:       m.Notes,
	}
}

// FromMovements mapea un slice de entidades, conservando el orden.
func FromMovements(ms []entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMovement(m))
	}
	return out
}
