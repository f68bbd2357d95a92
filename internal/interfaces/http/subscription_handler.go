package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
)

// SubscriptionHandler suscripciones de plan por tenant.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler de suscripciones.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Create contrata o cambia el plan. Desactiva la suscripción anterior en la
// misma transacción; a lo más una activa por tenant.
// @Summary Contratar plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubscriptionRequest true "Suscripción"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	sub, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GetActive devuelve la suscripción activa del tenant del token.
// @Summary Suscripción activa
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /subscriptions/active [get]
func (h *SubscriptionHandler) GetActive(c *fiber.Ctx) error {
	sub, err := h.uc.GetActive(GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}

// List historial de suscripciones del tenant.
// @Summary Listar suscripciones
// @Tags subscriptions
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.SubscriptionListResponse
// @Security Bearer
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	list, err := h.uc.List(GetTenantID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
