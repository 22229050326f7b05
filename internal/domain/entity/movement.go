package entity

import "time"

// Tipos de movimiento de stock. Los valores "ENTREE"/"SORTIE" son la
// codificación de referencia del consolidado persistido y del API; no cambiar.
const (
	MovementTypeEntry = "ENTREE" // entrada de stock
	MovementTypeExit  = "SORTIE" // salida de stock
)

// Movement representa un movimiento de stock (entrada o salida) en el libro
// de movimientos. Es inmutable una vez creado: las correcciones se modelan
// como borrado + re-creación, nunca como mutación.
//
// ProductName es una instantánea del nombre del producto en el momento de la
// creación. NO se sincroniza con renombres posteriores: el historial debe
// mostrar el nombre tal como era (fidelidad de auditoría).
//
// Las etiquetas JSON son el layout persistido de referencia (camelCase) y
// deben poder hacer round-trip con los datos existentes.
type Movement struct {
	ID          string    `json:"id"`
	ProductID   int       `json:"productId"`   // referencia débil al catálogo
	ProductName string    `json:"productName"` // instantánea, no join
	Type        string    `json:"type"`        // ENTREE | SORTIE
	Quantity    int       `json:"quantity"`    // unidades movidas, > 0
	Date        time.Time `json:"date"`        // ISO-8601; puede ser retroactiva

	// Metadatos de entrada (opcionales).
	Reference string `json:"reference,omitempty"`
	Supplier  string `json:"supplier,omitempty"`
	Reason    string `json:"reason,omitempty"`

	// Metadatos de salida (opcionales).
	Receiver string `json:"receiver,omitempty"`
	User     string `json:"user,omitempty"`
	Purpose  string `json:"purpose,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// IsEntry indica si el movimiento es una entrada de stock.
func (m Movement) IsEntry() bool { return m.Type == MovementTypeEntry }

// IsExit indica si el movimiento es una salida de stock.
func (m Movement) IsExit() bool { return m.Type == MovementTypeExit }
