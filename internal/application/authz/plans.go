package authz

import "github.com/temucosoft/retail-api/internal/domain/entity"

// PlanFeatures describe qué habilita un plan. Los límites numéricos usan
// 0 = sin límite. El cero-valor del struct (todo apagado, límites en -1 no:
// ver NoFeatures) representa "sin suscripción activa".
type PlanFeatures struct {
	MaxBranches int  // máximo de sucursales; 0 = sin límite
	MaxUsers    int  // máximo de usuarios; 0 = sin límite
	Reports     bool // acceso a reportes
	APIAccess   bool // acceso a la superficie de integración
}

// PlanCatalog mapea plan -> features. Se construye en main y se inyecta al
// Authorizer; no hay estado global de planes.
type PlanCatalog map[string]PlanFeatures

// DefaultPlanCatalog catálogo comercial vigente.
func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		entity.PlanBasic: {
			MaxBranches: 1,
			MaxUsers:    5,
			Reports:     false,
			APIAccess:   false,
		},
		entity.PlanStandard: {
			MaxBranches: 3,
			MaxUsers:    20,
			Reports:     true,
			APIAccess:   false,
		},
		entity.PlanPremium: {
			MaxBranches: 0,
			MaxUsers:    0,
			Reports:     true,
			APIAccess:   true,
		},
	}
}

// NoFeatures features de un tenant sin suscripción activa: nada habilitado y
// límites en cero efectivo (todo rechazo pasa por los booleanos y por
// MaxBranches/MaxUsers = denegar creación).
func NoFeatures() PlanFeatures {
	return PlanFeatures{MaxBranches: -1, MaxUsers: -1}
}

// limitReached aplica la frontera inclusiva: con limit > 0 se rechaza cuando
// current >= limit; limit 0 = sin límite; limit negativo = denegar siempre.
func limitReached(current, limit int) bool {
	if limit == 0 {
		return false
	}
	if limit < 0 {
		return true
	}
	return current >= limit
}
