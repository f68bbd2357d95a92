package entity

import "time"

// Supplier representa un proveedor externo; su RUT se valida con módulo 11.
type Supplier struct {
	ID        string
	TenantID  string
	Name      string
	RUT       string
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
