package dto

import "time"

// PurchaseItemRequest una línea de la compra; Cost es el costo negociado.
type PurchaseItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
	Cost      int64  `json:"cost" validate:"min=0"`
}

// CreatePurchaseRequest entrada para registrar una compra a proveedor.
// Date en formato YYYY-MM-DD; no puede ser futura.
type CreatePurchaseRequest struct {
	SupplierID string                `json:"supplier_id" validate:"required"`
	BranchID   string                `json:"branch_id" validate:"required"`
	Date       string                `json:"date" validate:"required"`
	Notes      string                `json:"notes"`
	Items      []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemResponse línea de compra.
type PurchaseItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Cost      int64  `json:"cost"`
	Subtotal  int64  `json:"subtotal"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	SupplierID string                 `json:"supplier_id"`
	BranchID   string                 `json:"branch_id"`
	Date       string                 `json:"date"`
	Total      int64                  `json:"total"`
	Notes      string                 `json:"notes,omitempty"`
	Items      []PurchaseItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
