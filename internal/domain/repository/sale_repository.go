package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas POS.
// Las ventas son create-once: no existe Update de cabecera ni de líneas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateItem(i *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Sale, error)
}
