package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// UserHandler gestión de personal del tenant (vendedores, gerentes, admins).
type UserHandler struct {
	uc      *usecase.UserUseCase
	metrics *metrics.Metrics
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, m *metrics.Metrics) *UserHandler {
	return &UserHandler{uc: uc, metrics: m}
}

// Create crea un usuario de staff, sujeto al límite de usuarios del plan.
// El creador no puede otorgar un rol superior al propio.
// @Summary Crear usuario de staff
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security Bearer
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	user, err := h.uc.Create(c.Context(), GetRole(c), GetTenantID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrLimitExceeded) {
			h.metrics.PlanLimitExceededTotal.Inc()
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Get devuelve un usuario del tenant.
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// List lista los usuarios del tenant.
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.UserListResponse
// @Security Bearer
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
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

// Delete desactiva un usuario del tenant.
// @Summary Eliminar usuario
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
