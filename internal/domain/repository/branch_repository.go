package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// BranchRepository puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(b *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Branch, error)
	// CountByTenant cuenta las sucursales del tenant; usado por el límite MaxBranches del plan.
	CountByTenant(tenantID string) (int, error)
	Update(b *entity.Branch) error
	Delete(id string) error
}
