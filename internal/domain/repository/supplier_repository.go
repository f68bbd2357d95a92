package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}
