package entity

// DefaultStockAlertThreshold se usa cuando el catálogo no define umbral
// (cero o ausente) para un producto.
const DefaultStockAlertThreshold = 10

// Product es la instantánea de un producto del Catálogo de Productos externo.
// El catálogo es el dueño del dato: Quantity es autoritativa allí y este
// servicio solo lee copias y emite comandos de actualización. Nunca se
// recalcula Quantity desde el libro de movimientos.
type Product struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`            // existencias actuales (autoritativo en el catálogo)
	StockAlertThreshold int    `json:"stockAlertThreshold"` // 0 = sin definir, aplica DefaultStockAlertThreshold
	TypeProduct         string `json:"typeProduct"`
	Category            string `json:"category"`
}

// AlertThreshold devuelve el umbral de alerta efectivo del producto.
func (p Product) AlertThreshold() int {
	if p.StockAlertThreshold <= 0 {
		return DefaultStockAlertThreshold
	}
	return p.StockAlertThreshold
}
