package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/sales"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// SaleHandler ventas POS y su comprobante.
type SaleHandler struct {
	uc        *sales.UseCase
	receiptUC *sales.ReceiptUseCase
	metrics   *metrics.Metrics
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.UseCase, receiptUC *sales.ReceiptUseCase, m *metrics.Metrics) *SaleHandler {
	return &SaleHandler{uc: uc, receiptUC: receiptUC, metrics: m}
}

// Create registra una venta POS descontando stock atómicamente.
// @Summary Registrar venta
// @Description Rechaza la venta completa si alguna línea no tiene stock suficiente.
// @Tags sales
// @Accept json
// @Produce json
// @Param request body dto.CreateSaleRequest true "Venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	sale, err := h.uc.CreateSale(c.Context(), GetTenantID(c), GetUserID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			h.metrics.InsufficientStockTotal.Inc()
		}
		return respondError(c, err)
	}
	h.metrics.SalesCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// Get devuelve una venta con sus líneas.
// @Summary Obtener venta
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// List lista ventas del tenant, opcionalmente filtradas por sucursal.
// @Summary Listar ventas
// @Tags sales
// @Produce json
// @Param branch_id query string false "Branch ID"
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.SaleListResponse
// @Security Bearer
// @Router /sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	list, err := h.uc.ListSales(c.Context(), GetTenantID(c), c.Query("branch_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Receipt descarga el comprobante PDF de la venta.
// @Summary Descargar comprobante de venta
// @Tags sales
// @Produce application/pdf
// @Param id path string true "Sale ID"
// @Success 200 {file} binary "PDF"
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
