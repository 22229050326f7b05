// Package catalog implementa el CatalogGateway sobre el API HTTP+JSON del
// Catálogo de Productos externo, dueño autoritativo de los productos.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que HTTPGateway implementa el puerto.
var _ repository.CatalogGateway = (*HTTPGateway)(nil)

// HTTPGateway habla con el catálogo vía net/http de la librería estándar.
// No reintenta: todo fallo de red o respuesta inesperada se propaga como
// domain.ErrGatewayUnavailable.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el gateway. timeout acota cada llamada a nivel de red;
// el context del llamador puede acortarla más.
func New(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetProduct devuelve el producto con ese id, o domain.ErrProductNotFound
// si el catálogo reporta 404.
func (g *HTTPGateway) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/products/%d", g.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: construir petición: %v", domain.ErrGatewayUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// sigue abajo
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	default:
		return nil, unexpectedStatus(resp)
	}

	var product entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: decodificar producto: %v", domain.ErrGatewayUnavailable, err)
	}
	return &product, nil
}

// ListProducts devuelve todos los productos del catálogo, en el orden en que
// el catálogo los enumera (los consumidores dependen de ese orden para
// desempatar alertas).
func (g *HTTPGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: construir petición: %v", domain.ErrGatewayUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var products []entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: decodificar productos: %v", domain.ErrGatewayUnavailable, err)
	}
	return products, nil
}

// UpdateProductQuantity fija la cantidad del producto en el catálogo
// (PATCH parcial: solo el campo quantity).
func (g *HTTPGateway) UpdateProductQuantity(ctx context.Context, id, newQuantity int) error {
	body, err := json.Marshal(map[string]int{"quantity": newQuantity})
	if err != nil {
		return fmt.Errorf("%w: codificar cantidad: %v", domain.ErrGatewayUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/products/%d", g.baseURL, id), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: construir petición: %v", domain.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	default:
		return unexpectedStatus(resp)
	}
}

// unexpectedStatus arma el error para un status fuera de contrato,
// incluyendo un prefijo del cuerpo para diagnóstico.
func unexpectedStatus(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return fmt.Errorf("%w: status %d: %s", domain.ErrGatewayUnavailable, resp.StatusCode, snippet)
}
