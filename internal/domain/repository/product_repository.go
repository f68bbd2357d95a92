package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id string) error
}
