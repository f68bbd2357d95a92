package entity

import "time"

// Purchase es una compra a proveedor: suma stock en la sucursal receptora,
// auto-provisionando la fila de inventario si no existe.
type Purchase struct {
	ID         string
	SupplierID string
	BranchID   string // sucursal que recibe la compra
	Date       time.Time
	Total      int64 // CLP
	Notes      string
	CreatedAt  time.Time
}

// PurchaseItem es una línea de compra. Cost es el costo unitario negociado con
// el proveedor en esta compra, no el Cost de referencia del producto.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64 // >= 1
	Cost       int64 // costo unitario en CLP
}
