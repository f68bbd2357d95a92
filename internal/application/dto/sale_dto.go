package dto

import "time"

// SaleItemRequest una línea de la venta.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta POS.
// El precio no viene del cliente: se congela del catálogo en el servidor.
type CreateSaleRequest struct {
	BranchID      string            `json:"branch_id" validate:"required"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash debit credit transfer"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con su precio histórico.
type SaleItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Subtotal  int64  `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	BranchID      string             `json:"branch_id"`
	UserID        string             `json:"user_id"`
	Total         int64              `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
