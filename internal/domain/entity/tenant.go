package entity

import "time"

// Tenant representa una empresa cliente de la plataforma (farmacia, supermercado,
// librería). Reemplaza al string libre "company" del modelo antiguo: User, Branch
// y Subscription la referencian por ID estable.
type Tenant struct {
	ID        string
	Name      string
	RUT       string // RUT de la empresa, opcional
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
