package purchasing

import (
	"context"

	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta una función dentro de una transacción que incluye el
// ledger de inventario y la persistencia de compras.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
