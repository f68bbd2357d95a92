package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// OrderRepository puerto de persistencia para pedidos e-commerce.
// Las líneas son inmutables; solo el status de la cabecera cambia después de crear.
type OrderRepository interface {
	Create(o *entity.Order) error
	CreateItem(i *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}

// CartRepository puerto del carrito persistente (staging pre-checkout).
type CartRepository interface {
	// Add inserta o acumula: si ya existe la fila (user, product) suma la cantidad.
	Add(item *entity.CartItem) error
	GetByUserAndProduct(userID, productID string) (*entity.CartItem, error)
	ListByUser(userID string) ([]*entity.CartItem, error)
	DeleteByUserAndProduct(userID, productID string) error
	DeleteByUser(userID string) error
}
