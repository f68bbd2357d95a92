package entity

import "time"

// Planes de suscripción disponibles.
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// ValidPlan informa si el plan es uno de los conocidos.
func ValidPlan(p string) bool {
	switch p {
	case PlanBasic, PlanStandard, PlanPremium:
		return true
	}
	return false
}

// Subscription es el plan contratado por un tenant. A lo sumo una suscripción
// activa por tenant: la creación desactiva las anteriores en la misma
// transacción, respaldada por un índice único parcial (tenant_id) WHERE active.
type Subscription struct {
	ID        string
	TenantID  string
	PlanName  string
	StartDate time.Time
	EndDate   time.Time // debe ser posterior a StartDate
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
