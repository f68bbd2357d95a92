package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/orders"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/pkg/metrics"
)

// OrderHandler carrito y pedidos e-commerce.
type OrderHandler struct {
	cartUC  *orders.CartUseCase
	orderUC *orders.OrderUseCase
	metrics *metrics.Metrics
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(cartUC *orders.CartUseCase, orderUC *orders.OrderUseCase, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{cartUC: cartUC, orderUC: orderUC, metrics: m}
}

// AddCartItem agrega un producto al carrito. Si ya estaba, acumula cantidad.
// @Summary Agregar al carrito
// @Tags cart
// @Accept json
// @Produce json
// @Param request body dto.AddToCartRequest true "Línea"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /cart/items [post]
func (h *OrderHandler) AddCartItem(c *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	cart, err := h.cartUC.AddItem(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// GetCart devuelve el carrito con totales referenciales a precio vigente.
// @Summary Ver carrito
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Security Bearer
// @Router /cart [get]
func (h *OrderHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.cartUC.GetCart(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// RemoveCartItem quita un producto del carrito.
// @Summary Quitar del carrito
// @Tags cart
// @Param product_id path string true "Product ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /cart/items/{product_id} [delete]
func (h *OrderHandler) RemoveCartItem(c *fiber.Ctx) error {
	if err := h.cartUC.RemoveItem(c.Context(), GetUserID(c), c.Params("product_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart vacía el carrito.
// @Summary Vaciar carrito
// @Tags cart
// @Success 204
// @Security Bearer
// @Router /cart [delete]
func (h *OrderHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cartUC.Clear(c.Context(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout convierte el carrito en pedido, asignando stock entre sucursales.
// @Summary Checkout del carrito
// @Description Asigna el stock drenando sucursales en orden estable; si el total disponible no alcanza, rechaza todo el pedido y conserva el carrito.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Datos de contacto"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security Bearer
// @Router /cart/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.orderUC.Checkout(c.Context(), GetUserID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			h.metrics.InsufficientStockTotal.Inc()
		}
		return respondError(c, err)
	}
	h.metrics.OrdersCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(order)
}

// CreateOrder crea un pedido directo, sin carrito, a nombre del usuario del token.
// @Summary Crear pedido directo
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Pedido"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.orderUC.CreateOrder(c.Context(), GetUserID(c), req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			h.metrics.InsufficientStockTotal.Inc()
		}
		return respondError(c, err)
	}
	h.metrics.OrdersCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrder devuelve un pedido con sus líneas.
// @Summary Obtener pedido
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderUC.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// ListOrders lista los pedidos del usuario autenticado.
// @Summary Listar pedidos
// @Tags orders
// @Produce json
// @Param limit query int false "Límite"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.OrderListResponse
// @Security Bearer
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	list, err := h.orderUC.ListOrders(c.Context(), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus transiciona el estado de un pedido.
// @Summary Actualizar estado de pedido
// @Description Los estados delivered y cancelled son terminales.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Nuevo estado"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security Bearer
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.orderUC.UpdateStatus(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
