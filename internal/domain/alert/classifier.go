// Package alert clasifica la severidad de stock bajo a partir de la cantidad
// actual y el umbral de alerta del producto.
package alert

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// criticalFraction es la fracción del umbral por debajo de la cual el stock
// es crítico. Se calcula en punto fijo (3/10 exacto) para que la frontera en
// múltiplos exactos del umbral no dependa de redondeo en coma flotante.
var criticalFraction = decimal.New(3, -1) // 0.3

// Classify devuelve la severidad para una cantidad frente a un umbral, o
// cadena vacía si el stock está por encima del umbral (sin alerta).
// Fronteras inclusivas: (0, 0.3·T] → CRITICAL, (0.3·T, T] → LOW.
func Classify(quantity, threshold int) string {
	if quantity == 0 {
		return entity.SeverityOutOfStock
	}
	if quantity > threshold {
		return ""
	}
	qty := decimal.NewFromInt(int64(quantity))
	critical := decimal.NewFromInt(int64(threshold)).Mul(criticalFraction)
	if qty.LessThanOrEqual(critical) {
		return entity.SeverityCritical
	}
	return entity.SeverityLow
}

// Message construye el mensaje legible de la alerta.
func Message(product entity.Product, severity string) string {
	switch severity {
	case entity.SeverityOutOfStock:
		return fmt.Sprintf("%s : rupture de stock", product.Name)
	case entity.SeverityCritical:
		return fmt.Sprintf("%s : stock critique (%d restant, seuil %d)",
			product.Name, product.Quantity, product.AlertThreshold())
	case entity.SeverityLow:
		return fmt.Sprintf("%s : stock bas (%d restant, seuil %d)",
			product.Name, product.Quantity, product.AlertThreshold())
	default:
		return ""
	}
}
