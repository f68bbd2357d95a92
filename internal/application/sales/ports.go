package sales

import (
	"context"

	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye el
// ledger de inventario y la persistencia de ventas. Si fn retorna error, el
// runner hace rollback y ninguna fila queda tocada.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
