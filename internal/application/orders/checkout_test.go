package orders_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/orders"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeInventoryRepo reproduce el contrato de orden estable de
// ListByProductForUpdate: nombre de sucursal ascendente, id como desempate.
type fakeInventoryRepo struct {
	rows        []*entity.Inventory
	branchNames map[string]string // branchID -> nombre
}

func (f *fakeInventoryRepo) put(inv *entity.Inventory) {
	cp := *inv
	f.rows = append(f.rows, &cp)
}

func (f *fakeInventoryRepo) find(branchID, productID string) *entity.Inventory {
	for _, inv := range f.rows {
		if inv.BranchID == branchID && inv.ProductID == productID {
			return inv
		}
	}
	return nil
}

func (f *fakeInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	inv := f.find(branchID, productID)
	if inv == nil {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	return f.Get(branchID, productID)
}

func (f *fakeInventoryRepo) ListByProductForUpdate(productID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range f.rows {
		if inv.ProductID == productID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := f.branchNames[out[i].BranchID], f.branchNames[out[j].BranchID]
		if ni != nj {
			return ni < nj
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error { f.put(inv); return nil }
func (f *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	if f.find(inv.BranchID, inv.ProductID) != nil {
		return nil
	}
	f.put(inv)
	return nil
}
func (f *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) { return nil, nil }
func (f *fakeInventoryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	existing := f.find(inv.BranchID, inv.ProductID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *inv
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error { return nil }

func (f *fakeInventoryRepo) snapshot() []*entity.Inventory {
	snap := make([]*entity.Inventory, 0, len(f.rows))
	for _, inv := range f.rows {
		cp := *inv
		snap = append(snap, &cp)
	}
	return snap
}

func (f *fakeInventoryRepo) stock(branchID, productID string) int64 {
	inv := f.find(branchID, productID)
	if inv == nil {
		return -1
	}
	return inv.Stock
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  []*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo { return &fakeOrderRepo{orders: make(map[string]*entity.Order)} }

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(i *entity.OrderItem) error {
	cp := *i
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, i := range f.items {
		if i.OrderID == orderID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeCartRepo struct {
	items []*entity.CartItem
}

func (f *fakeCartRepo) find(userID, productID string) *entity.CartItem {
	for _, i := range f.items {
		if i.UserID == userID && i.ProductID == productID {
			return i
		}
	}
	return nil
}

// Add replica la semántica de acumulación: repetir (user, product) suma.
func (f *fakeCartRepo) Add(item *entity.CartItem) error {
	if existing := f.find(item.UserID, item.ProductID); existing != nil {
		existing.Quantity += item.Quantity
		return nil
	}
	cp := *item
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeCartRepo) GetByUserAndProduct(userID, productID string) (*entity.CartItem, error) {
	item := f.find(userID, productID)
	if item == nil {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, i := range f.items {
		if i.UserID == userID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) DeleteByUserAndProduct(userID, productID string) error {
	for idx, i := range f.items {
		if i.UserID == userID && i.ProductID == productID {
			f.items = append(f.items[:idx], f.items[idx+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteByUser(userID string) error {
	var keep []*entity.CartItem
	for _, i := range f.items {
		if i.UserID != userID {
			keep = append(keep, i)
		}
	}
	f.items = keep
	return nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }

// fakeOrderTxRunner imita la transacción: snapshot de ledger, pedidos y
// carrito antes de fn, restauración completa si fn falla.
type fakeOrderTxRunner struct {
	inv    *fakeInventoryRepo
	orders *fakeOrderRepo
	cart   *fakeCartRepo
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) error) error {
	invSnap := r.inv.snapshot()
	ordersSnap := make(map[string]*entity.Order, len(r.orders.orders))
	for k, v := range r.orders.orders {
		cp := *v
		ordersSnap[k] = &cp
	}
	itemsSnap := append([]*entity.OrderItem(nil), r.orders.items...)
	cartSnap := make([]*entity.CartItem, 0, len(r.cart.items))
	for _, i := range r.cart.items {
		cp := *i
		cartSnap = append(cartSnap, &cp)
	}

	if err := fn(r.inv, r.orders, r.cart); err != nil {
		r.inv.rows = invSnap
		r.orders.orders = ordersSnap
		r.orders.items = itemsSnap
		r.cart.items = cartSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	buyerID   = "user-comprador"
	productID = "prod-1"
	branchA   = "branch-a" // "Antofagasta": primera en orden alfabético
	branchB   = "branch-b" // "Temuco": segunda
)

type orderFixture struct {
	cartUC   *orders.CartUseCase
	orderUC  *orders.OrderUseCase
	inv      *fakeInventoryRepo
	orders   *fakeOrderRepo
	cart     *fakeCartRepo
	products *fakeProductRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	inv := &fakeInventoryRepo{branchNames: map[string]string{
		branchA: "Antofagasta",
		branchB: "Temuco",
	}}
	orderRepo := newFakeOrderRepo()
	cartRepo := &fakeCartRepo{}
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}

	_ = products.Create(&entity.Product{ID: productID, TenantID: "tenant-1", SKU: "SKU-1", Name: "Café", Price: 1000})
	inv.put(&entity.Inventory{ID: "inv-a", BranchID: branchA, ProductID: productID, Stock: 3, UpdatedAt: time.Now()})
	inv.put(&entity.Inventory{ID: "inv-b", BranchID: branchB, ProductID: productID, Stock: 4, UpdatedAt: time.Now()})

	runner := &fakeOrderTxRunner{inv: inv, orders: orderRepo, cart: cartRepo}
	return &orderFixture{
		cartUC:   orders.NewCartUseCase(cartRepo, products),
		orderUC:  orders.NewOrderUseCase(runner, products, orderRepo, cartRepo),
		inv:      inv,
		orders:   orderRepo,
		cart:     cartRepo,
		products: products,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_AcumulaCantidadEnFilaExistente(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	_, err := fx.cartUC.AddItem(ctx, buyerID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	cart, err := fx.cartUC.AddItem(ctx, buyerID, dto.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "añadir el mismo producto no duplica la fila")
	assert.Equal(t, int64(5), cart.Items[0].Quantity, "2 + 3 deben acumular 5")
	assert.Equal(t, int64(5000), cart.Total, "total referencial a precio vigente")
}

func TestAddItem_ProductoInexistente(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.cartUC.AddItem(context.Background(), buyerID, dto.AddToCartRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCart_OmiteProductosEliminados(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	_, err := fx.cartUC.AddItem(ctx, buyerID, dto.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	_ = fx.products.Delete(productID)

	cart, err := fx.cartUC.GetCart(ctx, buyerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "el producto eliminado del catálogo no aparece en el carrito")
	assert.Equal(t, int64(0), cart.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_DrenaYDerramaEntreSucursales(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	_, err := fx.cartUC.AddItem(ctx, buyerID, dto.AddToCartRequest{ProductID: productID, Quantity: 5})
	require.NoError(t, err)

	order, err := fx.orderUC.Checkout(ctx, buyerID, dto.CheckoutRequest{CustomerName: "Ana"})
	require.NoError(t, err)

	// Antofagasta (primera en orden) se agota; el resto derrama en Temuco.
	assert.Equal(t, int64(0), fx.inv.stock(branchA, productID), "la primera sucursal se drena completa")
	assert.Equal(t, int64(2), fx.inv.stock(branchB, productID), "el resto se descuenta de la siguiente")

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(5000), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(1000), order.Items[0].Price, "precio congelado al checkout")

	remaining, _ := fx.cart.ListByUser(buyerID)
	assert.Empty(t, remaining, "el carrito se vacía tras el checkout exitoso")
}

func TestCheckout_InsuficienteGlobalDejaTodoIntacto(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	// 3 + 4 = 7 disponibles en total; pedir 10 debe fallar completo.
	_, err := fx.cartUC.AddItem(ctx, buyerID, dto.AddToCartRequest{ProductID: productID, Quantity: 10})
	require.NoError(t, err)

	_, err = fx.orderUC.Checkout(ctx, buyerID, dto.CheckoutRequest{})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "SKU-1", stockErr.SKU)
	assert.Equal(t, int64(10), stockErr.Requested)
	assert.Equal(t, int64(7), stockErr.Available, "el error reporta la disponibilidad global sumada")

	assert.Equal(t, int64(3), fx.inv.stock(branchA, productID), "el ledger queda intacto")
	assert.Equal(t, int64(4), fx.inv.stock(branchB, productID))
	assert.Empty(t, fx.orders.orders, "no se crea ningún pedido")

	remaining, _ := fx.cart.ListByUser(buyerID)
	require.Len(t, remaining, 1, "el carrito se conserva para reintentar")
	assert.Equal(t, int64(10), remaining[0].Quantity)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.orderUC.Checkout(context.Background(), buyerID, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart, "nunca se crea un pedido sin líneas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pedido directo y estados
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_DirectoDescuentaStock(t *testing.T) {
	fx := newOrderFixture(t)

	order, err := fx.orderUC.CreateOrder(context.Background(), buyerID, dto.CreateOrderRequest{
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		Items:         []dto.OrderItemRequest{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, buyerID, order.UserID, "el pedido queda asociado al usuario que lo emite")
	assert.Equal(t, int64(1), fx.inv.stock(branchA, productID), "descuenta de la primera sucursal en orden")
	assert.Equal(t, int64(2000), order.Total)
}

func TestUpdateStatus_EstadosTerminalesNoTransicionan(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	order, err := fx.orderUC.CreateOrder(ctx, buyerID, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	// pending → shipped → delivered es el flujo normal.
	_, err = fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusShipped})
	require.NoError(t, err)
	updated, err := fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)

	// delivered es terminal: cualquier transición posterior es conflicto.
	_, err = fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusShipped})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Estado desconocido se rechaza por validación.
	_, err = fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: "devuelto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_CancelledEsTerminal(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	order, err := fx.orderUC.CreateOrder(ctx, buyerID, dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)

	_, err = fx.orderUC.UpdateStatus(ctx, order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusPending})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
