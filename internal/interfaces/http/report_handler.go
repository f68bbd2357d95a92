package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/reports"
)

// ReportHandler reportes del tenant. Requiere plan con reportes.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// tenantScope resuelve el tenant de una consulta: el del token o, para el
// operador de plataforma (super_admin, sin tenant propio), el query param
// tenant_id. Si queda vacío, el usecase lo rechaza en validación.
func tenantScope(c *fiber.Ctx) string {
	if tenantID := GetTenantID(c); tenantID != "" {
		return tenantID
	}
	return c.Query("tenant_id")
}

// Stock stock valorizado a precio de venta vigente.
// @Summary Reporte de stock valorizado
// @Tags reports
// @Produce json
// @Param branch_id query string false "Branch ID (vacío = todas)"
// @Param tenant_id query string false "Tenant ID (solo super_admin)"
// @Success 200 {object} dto.StockReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	report, err := h.uc.StockReport(c.Context(), tenantScope(c), c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Sales ventas agregadas por día o mes.
// @Summary Reporte de ventas por período
// @Tags reports
// @Produce json
// @Param from query string true "Desde (YYYY-MM-DD)"
// @Param to query string true "Hasta (YYYY-MM-DD)"
// @Param granularity query string false "day | month (default day)"
// @Param branch_id query string false "Branch ID (vacío = todas)"
// @Param tenant_id query string false "Tenant ID (solo super_admin)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	granularity := c.Query("granularity", reports.GranularityDay)
	report, err := h.uc.SalesReport(
		c.Context(),
		tenantScope(c),
		c.Query("branch_id"),
		c.Query("from"),
		c.Query("to"),
		granularity,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// LowStock productos bajo su punto de reorden.
// @Summary Reporte de reposición pendiente
// @Tags reports
// @Produce json
// @Param branch_id query string false "Branch ID (vacío = todas)"
// @Param tenant_id query string false "Tenant ID (solo super_admin)"
// @Success 200 {object} dto.LowStockReportResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security Bearer
// @Router /reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	report, err := h.uc.LowStockReport(c.Context(), tenantScope(c), c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
