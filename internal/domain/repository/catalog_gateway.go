package repository

import (
	"context"

	"github.com/gestock/gestock-api/internal/domain/entity"
)

// CatalogGateway define el puerto hacia el Catálogo de Productos externo,
// dueño autoritativo de los productos y de su cantidad actual.
//
// El contrato es independiente del transporte; la implementación de
// referencia habla HTTP+JSON.
type CatalogGateway interface {
	// GetProduct devuelve el producto con ese id, o domain.ErrProductNotFound.
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	// ListProducts devuelve todos los productos del catálogo.
	ListProducts(ctx context.Context) ([]entity.Product, error)
	// UpdateProductQuantity fija la cantidad actual del producto en el catálogo.
	UpdateProductQuantity(ctx context.Context, id, newQuantity int) error
}
