package entity

import "time"

// DefaultReorderPoint nivel mínimo por defecto para alerta de reposición.
const DefaultReorderPoint = 10

// Inventory es el ledger: la fila (branch, product) es única y su Stock es la
// fuente única de verdad de cuántas unidades existen en esa sucursal.
// Invariante: Stock >= 0 tras toda transacción confirmada.
// ReorderPoint es informativo; solo aparece en reportes, sin reorden automático.
type Inventory struct {
	ID           string
	BranchID     string
	ProductID    string
	Stock        int64
	ReorderPoint int64
	UpdatedAt    time.Time
}
