package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Price y Cost van en pesos chilenos enteros, sin centavos.
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	SupplierID  string `json:"supplier_id"`
	Price       int64  `json:"price" validate:"min=0"`
	Cost        int64  `json:"cost" validate:"min=0"`
	Category    string `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto. El SKU no cambia.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	SupplierID  *string `json:"supplier_id"`
	Price       *int64  `json:"price" validate:"omitempty,min=0"`
	Cost        *int64  `json:"cost" validate:"omitempty,min=0"`
	Category    *string `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	Price       int64     `json:"price"`
	Cost        int64     `json:"cost"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
