package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/purchasing"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	rows map[string]*entity.Inventory // clave branchID|productID
}

func invKey(branchID, productID string) string { return branchID + "|" + productID }

func (f *fakeInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	inv, ok := f.rows[invKey(branchID, productID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	return f.Get(branchID, productID)
}

func (f *fakeInventoryRepo) ListByProductForUpdate(productID string) ([]*entity.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	key := invKey(inv.BranchID, inv.ProductID)
	if _, ok := f.rows[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *inv
	f.rows[key] = &cp
	return nil
}

func (f *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	if _, ok := f.rows[invKey(inv.BranchID, inv.ProductID)]; ok {
		return nil
	}
	return f.Create(inv)
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) { return nil, nil }

func (f *fakeInventoryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	key := invKey(inv.BranchID, inv.ProductID)
	if _, ok := f.rows[key]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	f.rows[key] = &cp
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error { return nil }

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	items     []*entity.PurchaseItem
}

func (f *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	f.purchases[p.ID] = &cp
	return nil
}

func (f *fakePurchaseRepo) CreateItem(i *entity.PurchaseItem) error {
	cp := *i
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePurchaseRepo) GetItemsByPurchaseID(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, i := range f.items {
		if i.PurchaseID == purchaseID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range f.purchases {
		if p.BranchID == branchID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
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
func (f *fakeProductRepo) Delete(id string) error         { return nil }

type fakeBranchRepo struct{ branches map[string]*entity.Branch }

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }
func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (f *fakeBranchRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Branch, error) {
	return nil, nil
}
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int, error) { return 0, nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error              { return nil }
func (f *fakeBranchRepo) Delete(id string) error                     { return nil }

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (f *fakeSupplierRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) Delete(id string) error          { return nil }

// fakePurchaseTxRunner aplica fn directamente; los tests de compra no ejercen
// rollback porque la compra no tiene rechazo por stock.
type fakePurchaseTxRunner struct {
	inv       *fakeInventoryRepo
	purchases *fakePurchaseRepo
}

func (r *fakePurchaseTxRunner) RunPurchase(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return fn(r.inv, r.purchases)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantID   = "tenant-1"
	branchID   = "branch-1"
	supplierID = "supplier-1"
	productID  = "prod-1"
)

type purchaseFixture struct {
	uc        *purchasing.UseCase
	inv       *fakeInventoryRepo
	purchases *fakePurchaseRepo
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	inv := &fakeInventoryRepo{rows: make(map[string]*entity.Inventory)}
	purchases := &fakePurchaseRepo{purchases: make(map[string]*entity.Purchase)}
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}
	branches := &fakeBranchRepo{branches: make(map[string]*entity.Branch)}
	suppliers := &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}

	_ = branches.Create(&entity.Branch{ID: branchID, TenantID: tenantID, Name: "Centro"})
	_ = suppliers.Create(&entity.Supplier{ID: supplierID, TenantID: tenantID, Name: "Dist. Sur", RUT: "76.123.456-0"})
	_ = products.Create(&entity.Product{ID: productID, TenantID: tenantID, SKU: "SKU-1", Name: "Café", Price: 1000, Cost: 600})

	runner := &fakePurchaseTxRunner{inv: inv, purchases: purchases}
	return &purchaseFixture{
		uc:        purchasing.NewUseCase(runner, products, branches, suppliers, purchases),
		inv:       inv,
		purchases: purchases,
	}
}

func today() string { return time.Now().Format("2006-01-02") }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_AutoProvisionaInventario(t *testing.T) {
	fx := newPurchaseFixture(t)

	// Sin fila previa en el ledger: la compra la crea y suma encima.
	resp, err := fx.uc.CreatePurchase(context.Background(), tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 20, Cost: 550}},
	})
	require.NoError(t, err)

	inv, err := fx.inv.Get(branchID, productID)
	require.NoError(t, err)
	require.NotNil(t, inv, "la compra debe auto-provisionar la fila del ledger")
	assert.Equal(t, int64(20), inv.Stock)
	assert.Equal(t, int64(entity.DefaultReorderPoint), inv.ReorderPoint,
		"la fila auto-provisionada usa el punto de reorden por defecto")

	assert.Equal(t, int64(20*550), resp.Total, "total = cantidad × costo negociado")
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(550), resp.Items[0].Cost, "el costo de la línea es el negociado, no el de referencia")
}

func TestCreatePurchase_SumaSobreStockExistente(t *testing.T) {
	fx := newPurchaseFixture(t)
	_ = fx.inv.Create(&entity.Inventory{ID: "inv-1", BranchID: branchID, ProductID: productID, Stock: 5, ReorderPoint: 3})

	_, err := fx.uc.CreatePurchase(context.Background(), tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 7, Cost: 600}},
	})
	require.NoError(t, err)

	inv, _ := fx.inv.Get(branchID, productID)
	assert.Equal(t, int64(12), inv.Stock)
	assert.Equal(t, int64(3), inv.ReorderPoint, "el punto de reorden existente no se toca")
}

func TestCreatePurchase_RechazaFechaFutura(t *testing.T) {
	fx := newPurchaseFixture(t)

	mañana := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	_, err := fx.uc.CreatePurchase(context.Background(), tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       mañana,
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, Cost: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "compra con fecha futura debe rechazarse")

	_, err = fx.uc.CreatePurchase(context.Background(), tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       "15-01-2026", // formato inválido
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, Cost: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchase_FechaPasadaEsValida(t *testing.T) {
	fx := newPurchaseFixture(t)

	_, err := fx.uc.CreatePurchase(context.Background(), tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       "2024-06-15",
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 2, Cost: 500}},
	})
	assert.NoError(t, err, "registrar compras con fecha pasada es normal")
}

func TestCreatePurchase_ProveedorDeOtroTenant(t *testing.T) {
	fx := newPurchaseFixture(t)

	_, err := fx.uc.CreatePurchase(context.Background(), "tenant-ajeno", dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, Cost: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchase_ValidaLineas(t *testing.T) {
	fx := newPurchaseFixture(t)
	ctx := context.Background()

	_, err := fx.uc.CreatePurchase(ctx, tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 0, Cost: 100}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad debe ser >= 1")

	_, err = fx.uc.CreatePurchase(ctx, tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
		Items:      []dto.PurchaseItemRequest{{ProductID: productID, Quantity: 1, Cost: -50}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo")

	_, err = fx.uc.CreatePurchase(ctx, tenantID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		BranchID:   branchID,
		Date:       today(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "compra sin líneas")
}
