package dto

import "time"

// CreateTenantRequest entrada para dar de alta una empresa cliente.
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	RUT  string `json:"rut"`
}

// UpdateTenantRequest entrada para actualizar una empresa.
type UpdateTenantRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	RUT    *string `json:"rut"`
	Status *string `json:"status" validate:"omitempty,oneof=active suspended inactive"`
}

// TenantResponse salida de una empresa cliente.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RUT       string    `json:"rut,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse lista paginada de empresas.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
