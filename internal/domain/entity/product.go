package entity

import "time"

// Product representa un ítem del catálogo, con SKU único global.
// Price y Cost son enteros en pesos chilenos (sin centavos), ambos >= 0.
// Price es el precio de venta vigente; las ventas congelan el precio en la línea.
type Product struct {
	ID          string
	TenantID    string
	SKU         string
	Name        string
	Description string
	SupplierID  string // opcional
	Price       int64  // precio de venta en CLP
	Cost        int64  // costo de adquisición de referencia en CLP
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
