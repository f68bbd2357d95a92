package dto

// CreateSubscriptionRequest contrata (o cambia) el plan del tenant.
// Fechas en formato YYYY-MM-DD; EndDate debe ser posterior a StartDate.
type CreateSubscriptionRequest struct {
	TenantID  string `json:"tenant_id" validate:"required"`
	PlanName  string `json:"plan_name" validate:"required,oneof=basic standard premium"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// SubscriptionResponse salida de una suscripción.
type SubscriptionResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	PlanName  string `json:"plan_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
}

// SubscriptionListResponse historial de suscripciones de un tenant.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
