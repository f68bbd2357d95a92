package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/reports"
	"github.com/temucosoft/retail-api/internal/application/usecase"
)

// IntegrationHandler superficie de integración programática para sistemas
// externos del tenant. Solo disponible en el plan premium.
type IntegrationHandler struct {
	productUC *usecase.ProductUseCase
	reportUC  *reports.UseCase
}

// NewIntegrationHandler construye el handler de integración.
func NewIntegrationHandler(productUC *usecase.ProductUseCase, reportUC *reports.UseCase) *IntegrationHandler {
	return &IntegrationHandler{productUC: productUC, reportUC: reportUC}
}

// ExportProducts exporta el catálogo completo del tenant.
// @Summary Exportar catálogo
// @Tags integration
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Param tenant_id query string false "Tenant ID (solo super_admin)"
// @Success 200 {object} dto.ProductListResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /integration/products [get]
func (h *IntegrationHandler) ExportProducts(c *fiber.Ctx) error {
	tenantID := tenantScope(c)
	if tenantID == "" {
		return badRequest(c, "se requiere tenant_id")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	list, err := h.productUC.List(tenantID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ExportStock exporta el stock por sucursal, valorizado a precio vigente.
// @Summary Exportar stock
// @Tags integration
// @Produce json
// @Param branch_id query string false "Branch ID (vacío = todas)"
// @Param tenant_id query string false "Tenant ID (solo super_admin)"
// @Success 200 {object} dto.StockReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /integration/stock [get]
func (h *IntegrationHandler) ExportStock(c *fiber.Ctx) error {
	report, err := h.reportUC.StockReport(c.Context(), tenantScope(c), c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
