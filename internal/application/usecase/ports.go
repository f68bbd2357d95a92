package usecase

import (
	"context"

	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// SubscriptionTxRunner ejecuta el cambio de plan en una transacción: la
// desactivación de la suscripción vigente y el alta de la nueva son atómicas.
type SubscriptionTxRunner interface {
	RunSubscription(ctx context.Context, fn func(
		subRepo repository.SubscriptionRepository,
	) error) error
}

// ProductTxRunner ejecuta el alta de producto en una transacción: el insert en
// el catálogo y la provisión de sus filas de ledger por sucursal son atómicos;
// un fallo a mitad de la provisión no deja un producto con ledger parcial.
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
