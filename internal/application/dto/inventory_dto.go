package dto

import "time"

// CreateInventoryRequest provisiona la fila (branch, product) del ledger.
type CreateInventoryRequest struct {
	BranchID     string `json:"branch_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	Stock        int64  `json:"stock" validate:"min=0"`
	ReorderPoint int64  `json:"reorder_point" validate:"min=0"`
}

// UpdateInventoryRequest ajuste manual de stock o punto de reorden.
type UpdateInventoryRequest struct {
	Stock        *int64 `json:"stock" validate:"omitempty,min=0"`
	ReorderPoint *int64 `json:"reorder_point" validate:"omitempty,min=0"`
}

// InventoryResponse salida de una fila del ledger.
type InventoryResponse struct {
	ID           string    `json:"id"`
	BranchID     string    `json:"branch_id"`
	ProductID    string    `json:"product_id"`
	Stock        int64     `json:"stock"`
	ReorderPoint int64     `json:"reorder_point"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de filas del ledger.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
