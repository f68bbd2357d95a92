package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia para compras a proveedor.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	CreateItem(i *entity.PurchaseItem) error
	GetByID(id string) (*entity.Purchase, error)
	GetItemsByPurchaseID(purchaseID string) ([]*entity.PurchaseItem, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Purchase, error)
}
