package entity

import "time"

// Branch representa una sucursal física de un tenant; dueña de cero o más filas
// de inventario.
type Branch struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
