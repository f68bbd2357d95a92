package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// TenantRepository puerto de persistencia para tenants.
type TenantRepository interface {
	Create(t *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
	Update(t *entity.Tenant) error
}
