package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// SubscriptionRepository puerto de persistencia para suscripciones.
type SubscriptionRepository interface {
	Create(s *entity.Subscription) error
	GetByID(id string) (*entity.Subscription, error)
	// GetActiveByTenant devuelve la suscripción activa del tenant o nil si no hay.
	GetActiveByTenant(tenantID string) (*entity.Subscription, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Subscription, error)
	// DeactivateByTenant apaga toda suscripción activa del tenant (paso previo a crear la nueva).
	DeactivateByTenant(tenantID string) error
	Update(s *entity.Subscription) error
}
