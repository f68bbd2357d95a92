package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// OrderUseCase crea pedidos e-commerce (desde carrito o directos) y gestiona su
// estado. El descuento de stock se reparte entre todas las sucursales que
// tienen el producto, en orden estable: drena la primera y derrama el resto.
type OrderUseCase struct {
	txRunner    OrderTxRunner
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
	}
}

// orderLine una línea ya validada con su precio congelado.
type orderLine struct {
	product  *entity.Product
	quantity int64
}

// Checkout convierte el carrito del usuario en un pedido. Carrito vacío es un
// error: nunca se crea un pedido sin líneas. Los CartItems se borran solo si el
// pedido se creó; cualquier fallo deja carrito y ledger intactos.
func (uc *OrderUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	cartItems, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]orderLine, 0, len(cartItems))
	for _, item := range cartItems {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, orderLine{product: product, quantity: item.Quantity})
	}

	order, items, err := uc.createOrder(ctx, userID, in.CustomerName, in.CustomerEmail, lines, true)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// CreateOrder crea un pedido directo con líneas explícitas, sin pasar por el
// carrito, a nombre del usuario que lo emite.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]orderLine, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, orderLine{product: product, quantity: item.Quantity})
	}

	order, items, err := uc.createOrder(ctx, userID, in.CustomerName, in.CustomerEmail, lines, false)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// createOrder descuenta stock y persiste el pedido en una sola transacción.
// drainCart indica si al final deben borrarse los CartItems del usuario.
func (uc *OrderUseCase) createOrder(ctx context.Context, userID, customerName, customerEmail string, lines []orderLine, drainCart bool) (*entity.Order, []*entity.OrderItem, error) {
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := make([]*entity.OrderItem, 0, len(lines))

	err := uc.txRunner.RunOrder(ctx, func(
		invRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
	) error {
		var total int64
		for _, line := range lines {
			if err := drainAcrossBranches(invRepo, line.product, line.quantity, now); err != nil {
				return err
			}
			item := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: line.product.ID,
				Quantity:  line.quantity,
				Price:     line.product.Price, // congelado al checkout
			}
			items = append(items, item)
			total += line.quantity * line.product.Price
		}

		order.Total = total
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		if drainCart {
			if err := cartRepo.DeleteByUser(userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// drainAcrossBranches descuenta quantity del producto repartido entre todas las
// sucursales que lo tienen, en el orden estable del repositorio (nombre de
// sucursal asc, id como desempate): agota la primera y derrama en la siguiente.
// Stock global insuficiente rechaza la línea completa.
func drainAcrossBranches(invRepo repository.InventoryRepository, product *entity.Product, quantity int64, now time.Time) error {
	rows, err := invRepo.ListByProductForUpdate(product.ID)
	if err != nil {
		return err
	}
	var available int64
	for _, inv := range rows {
		available += inv.Stock
	}
	if available < quantity {
		return &domain.InsufficientStockError{
			SKU:       product.SKU,
			Requested: quantity,
			Available: available,
		}
	}

	remaining := quantity
	for _, inv := range rows {
		if remaining == 0 {
			break
		}
		take := inv.Stock
		if take > remaining {
			take = remaining
		}
		if take == 0 {
			continue
		}
		inv.Stock -= take
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		remaining -= take
	}
	return nil
}

// GetOrder obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// ListOrders lista los pedidos de un usuario, más recientes primero.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	ordersList, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(ordersList)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range ordersList {
		items, err := uc.orderRepo.GetItemsByOrderID(o.ID)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *toOrderResponse(o, items))
	}
	return out, nil
}

// UpdateStatus cambia el estado del pedido. Las líneas son inmutables y los
// estados terminales (delivered, cancelled) no admiten más transiciones.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusDelivered || order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

func toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Status:        order.Status,
		Total:         order.Total,
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	for _, i := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			Quantity:  i.Quantity,
			Price:     i.Price,
			Subtotal:  i.Quantity * i.Price,
		})
	}
	return resp
}
