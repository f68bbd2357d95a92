package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNoInventoryRecord  = errors.New("sin registro de inventario para el producto en la sucursal")
	ErrLimitExceeded      = errors.New("límite del plan alcanzado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
)

// InsufficientStockError identifica el producto rechazado y el stock disponible.
// El rechazo de una venta debe nombrar SKU y cantidad disponible.
type InsufficientStockError struct {
	SKU       string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %d, disponible %d", e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NoInventoryRecordError indica una venta contra una fila de inventario no provisionada.
type NoInventoryRecordError struct {
	SKU      string
	BranchID string
}

func (e *NoInventoryRecordError) Error() string {
	return fmt.Sprintf("sin registro de inventario para %s en la sucursal %s", e.SKU, e.BranchID)
}

func (e *NoInventoryRecordError) Unwrap() error { return ErrNoInventoryRecord }
