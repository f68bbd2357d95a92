package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// InventoryRepository puerto del ledger de inventario.
//
// Get y GetForUpdate devuelven nil (sin error) cuando la fila (branch, product)
// no existe: la venta trata ese nil como NoInventoryRecord (estricta), la compra
// auto-provisiona la fila en 0. GetForUpdate y ListByProductForUpdate bloquean
// las filas (SELECT ... FOR UPDATE) y solo tienen sentido dentro de una tx.
type InventoryRepository interface {
	Get(branchID, productID string) (*entity.Inventory, error)
	GetForUpdate(branchID, productID string) (*entity.Inventory, error)
	// ListByProductForUpdate devuelve las filas del producto en todas las
	// sucursales, en orden estable (nombre de sucursal asc, id como desempate).
	// Es el orden de asignación del checkout e-commerce.
	ListByProductForUpdate(productID string) ([]*entity.Inventory, error)
	Create(inv *entity.Inventory) error
	Upsert(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	Delete(id string) error
}
