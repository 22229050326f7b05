package entity

// Severidades de alerta de stock bajo, de más a menos urgente.
const (
	SeverityOutOfStock = "OUT_OF_STOCK"
	SeverityCritical   = "CRITICAL"
	SeverityLow        = "LOW"
)

// SeverityRank devuelve el rango de ordenación de una severidad
// (0 = más urgente). Severidades desconocidas quedan al final.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityOutOfStock:
		return 0
	case SeverityCritical:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// StockAlert es una alerta de stock bajo derivada de la instantánea viva del
// catálogo. Nunca se almacena: se recalcula completa en cada consulta.
type StockAlert struct {
	ProductID           int
	Name                string
	Quantity            int
	StockAlertThreshold int
	Severity            string
	Message             string
}
