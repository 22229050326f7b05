package dto

import "github.com/gestock/gestock-api/internal/domain/entity"

// StockAlertResponse una alerta de stock bajo.
type StockAlertResponse struct {
	ProductID           int    `json:"product_id"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	StockAlertThreshold int    `json:"stock_alert_threshold"`
	Severity            string `json:"severity"` // OUT_OF_STOCK | CRITICAL | LOW
	Message             string `json:"message"`
}

// FromStockAlerts mapea las alertas conservando el orden por urgencia.
func FromStockAlerts(alerts []entity.StockAlert) []StockAlertResponse {
	out := make([]StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, StockAlertResponse{
			ProductID:           a.ProductID,
			Name:                a.Name,
			Quantity:            a.Quantity,
			StockAlertThreshold: a.StockAlertThreshold,
			Severity:            a.Severity,
			Message:             a.Message,
		})
	}
	return out
}
