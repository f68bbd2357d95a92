package orders

import (
	"context"

	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción que incluye el
// ledger de inventario, los pedidos y el carrito. El drenado del carrito y el
// descuento de stock son atómicos con la creación del pedido.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
	) error) error
}
