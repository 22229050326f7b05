// Package alerts calcula las alertas de stock bajo combinando la instantánea
// viva del catálogo con el umbral de alerta de cada producto.
package alerts

import (
	"context"
	"sort"

	"github.com/gestock/gestock-api/internal/domain/alert"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// UseCase recalcula las alertas completas en cada llamada; no hay estado
// incremental ni caché (las alertas nunca se almacenan).
type UseCase struct {
	catalog repository.CatalogGateway
}

// NewUseCase construye el caso de uso de alertas.
func NewUseCase(catalog repository.CatalogGateway) *UseCase {
	return &UseCase{catalog: catalog}
}

// ComputeAlerts clasifica cada producto del catálogo y devuelve las alertas
// ordenadas por urgencia (OUT_OF_STOCK, CRITICAL, LOW); los empates dentro
// de una severidad conservan el orden de enumeración del catálogo.
func (uc *UseCase) ComputeAlerts(ctx context.Context) ([]entity.StockAlert, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.StockAlert, 0, len(products))
	for _, p := range products {
		severity := alert.Classify(p.Quantity, p.AlertThreshold())
		if severity == "" {
			continue // por encima del umbral: sin alerta
		}
		result = append(result, entity.StockAlert{
			ProductID:           p.ID,
			Name:                p.Name,
			Quantity:            p.Quantity,
			StockAlertThreshold: p.AlertThreshold(),
			Severity:            severity,
			Message:             alert.Message(p, severity),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return entity.SeverityRank(result[i].Severity) < entity.SeverityRank(result[j].Severity)
	})
	return result, nil
}
