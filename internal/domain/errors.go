package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrGatewayUnavailable = errors.New("catálogo de productos no disponible")
	ErrStorageFailure     = errors.New("fallo del almacenamiento de movimientos")
	ErrUnreconciled       = errors.New("movimiento sin reconciliar con el catálogo")
	ErrUnauthorized       = errors.New("no autorizado")
)
