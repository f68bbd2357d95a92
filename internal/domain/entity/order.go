package entity

import "time"

// Estados de un pedido e-commerce. Las líneas son inmutables; solo el status
// cambia después de la creación.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus informa si el status es uno de los conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order es un pedido web del usuario que lo emitió. El stock se descuenta al
// crear el pedido, repartido entre todas las sucursales que tienen el producto.
type Order struct {
	ID            string
	UserID        string
	CustomerName  string
	CustomerEmail string
	Status        string
	Total         int64 // CLP
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem es una línea de pedido con precio unitario congelado al checkout.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64 // >= 1
	Price     int64 // precio unitario en CLP
}

// CartItem es el área de staging pre-checkout: una fila por (user, product);
// añadir el mismo producto acumula la cantidad en la fila existente.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64 // >= 1
	AddedAt   time.Time
}
