package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
)

// InventoryHandler filas del ledger de inventario (sucursal × producto).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create provisiona la fila (sucursal, producto) del ledger.
// @Summary Crear registro de inventario
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateInventoryRequest true "Registro"
// @Success 201 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security Bearer
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	inv, err := h.uc.Create(GetTenantID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Get devuelve una fila del ledger.
// @Summary Obtener registro de inventario
// @Tags inventory
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Update ajusta stock o punto de reorden manualmente.
// @Summary Ajustar inventario
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body dto.UpdateInventoryRequest true "Ajuste"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	inv, err := h.uc.Update(GetTenantID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// ListByBranch lista el ledger de una sucursal.
// @Summary Listar inventario por sucursal
// @Tags inventory
// @Produce json
// @Param branch_id query string true "Branch ID"
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.InventoryListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /inventory [get]
func (h *InventoryHandler) ListByBranch(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	branchID := c.Query("branch_id")
	if branchID == "" {
		return badRequest(c, "branch_id requerido")
	}
	list, err := h.uc.ListByBranch(GetTenantID(c), branchID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete elimina una fila del ledger.
// @Summary Eliminar registro de inventario
// @Tags inventory
// @Param id path string true "Inventory ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
