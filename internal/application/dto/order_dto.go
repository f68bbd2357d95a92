package dto

import "time"

// AddToCartRequest añade (o acumula) un producto en el carrito del usuario.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse una fila del carrito.
type CartItemResponse struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	Price       int64     `json:"price"` // precio vigente del catálogo, referencial
	AddedAt     time.Time `json:"added_at"`
}

// CartResponse el carrito completo de un usuario.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"` // referencial, a precios vigentes
}

// CheckoutRequest convierte el carrito en pedido. Los datos de contacto son
// obligatorios solo si el pedido no está asociado a un usuario registrado.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

// OrderItemRequest línea de un pedido directo (sin pasar por carrito).
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest pedido directo, sin pasar por el carrito.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email" validate:"omitempty,email"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest transición de estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

// OrderItemResponse línea de pedido con precio congelado.
type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Subtotal  int64  `json:"subtotal"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Status        string              `json:"status"`
	Total         int64               `json:"total"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
