package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/purchasing"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// PurchaseHandler compras a proveedor que ingresan stock.
type PurchaseHandler struct {
	uc      *purchasing.UseCase
	metrics *metrics.Metrics
}

// NewPurchaseHandler construye el handler de compras.
func NewPurchaseHandler(uc *purchasing.UseCase, m *metrics.Metrics) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, metrics: m}
}

// Create registra una compra e incrementa el stock de la sucursal receptora.
// @Summary Registrar compra
// @Description Si el producto no tiene fila de inventario en la sucursal, se provisiona en cero.
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.CreatePurchaseRequest true "Compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	purchase, err := h.uc.CreatePurchase(c.Context(), GetTenantID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.PurchasesCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// Get devuelve una compra con sus líneas.
// @Summary Obtener compra
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	purchase, err := h.uc.GetPurchase(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchase)
}

// List lista compras del tenant, opcionalmente por sucursal.
// @Summary Listar compras
// @Tags purchases
// @Produce json
// @Param branch_id query string false "Branch ID"
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.PurchaseListResponse
// @Security Bearer
// @Router /purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	list, err := h.uc.ListPurchases(c.Context(), GetTenantID(c), c.Query("branch_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
