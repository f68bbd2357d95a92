package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// BranchHandler sucursales del tenant.
type BranchHandler struct {
	uc      *usecase.BranchUseCase
	metrics *metrics.Metrics
}

// NewBranchHandler construye el handler de sucursales.
func NewBranchHandler(uc *usecase.BranchUseCase, m *metrics.Metrics) *BranchHandler {
	return &BranchHandler{uc: uc, metrics: m}
}

// Create crea una sucursal, sujeta al límite del plan.
// @Summary Crear sucursal
// @Tags branches
// @Accept json
// @Produce json
// @Param request body dto.CreateBranchRequest true "Sucursal"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	branch, err := h.uc.Create(c.Context(), GetRole(c), GetTenantID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrLimitExceeded) {
			h.metrics.PlanLimitExceededTotal.Inc()
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(branch)
}

// Get devuelve una sucursal del tenant.
// @Summary Obtener sucursal
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /branches/{id} [get]
func (h *BranchHandler) Get(c *fiber.Ctx) error {
	branch, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// Update modifica una sucursal.
// @Summary Actualizar sucursal
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Cambios"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	branch, err := h.uc.Update(GetTenantID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// List lista las sucursales del tenant.
// @Summary Listar sucursales
// @Tags branches
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.BranchListResponse
// @Security Bearer
// @Router /branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
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

// Delete elimina una sucursal.
// @Summary Eliminar sucursal
// @Tags branches
// @Param id path string true "Branch ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
