package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ products map[string]*entity.Product }

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.TenantID == tenantID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }

type fakeBranchRepo struct{ branches []*entity.Branch }

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches = append(f.branches, b); return nil }
func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeBranchRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.branches {
		if b.TenantID == tenantID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int, error) { return len(f.branches), nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error              { return nil }
func (f *fakeBranchRepo) Delete(id string) error                     { return nil }

type fakeInventoryRepo struct {
	rows []*entity.Inventory

	// failBranchID simula un fallo de infraestructura al provisionar esa sucursal.
	failBranchID string
}

func (f *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	if f.failBranchID != "" && inv.BranchID == f.failBranchID {
		return errors.New("conexión perdida")
	}
	for _, row := range f.rows {
		if row.BranchID == inv.BranchID && row.ProductID == inv.ProductID {
			return nil
		}
	}
	cp := *inv
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	for _, row := range f.rows {
		if row.BranchID == branchID && row.ProductID == productID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	return f.Get(branchID, productID)
}
func (f *fakeInventoryRepo) ListByProductForUpdate(productID string) ([]*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error { return f.Upsert(inv) }
func (f *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) { return nil, nil }
func (f *fakeInventoryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) Update(inv *entity.Inventory) error { return nil }
func (f *fakeInventoryRepo) Delete(id string) error             { return nil }

// fakeProductTxRunner imita la transacción de alta: snapshot de catálogo y
// ledger antes de fn, restauración completa si fn falla.
type fakeProductTxRunner struct {
	products *fakeProductRepo
	inv      *fakeInventoryRepo
}

func (r *fakeProductTxRunner) RunProduct(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
) error) error {
	productsSnap := make(map[string]*entity.Product, len(r.products.products))
	for k, v := range r.products.products {
		cp := *v
		productsSnap[k] = &cp
	}
	invSnap := make([]*entity.Inventory, 0, len(r.inv.rows))
	for _, row := range r.inv.rows {
		cp := *row
		invSnap = append(invSnap, &cp)
	}

	if err := fn(r.products, r.inv); err != nil {
		r.products.products = productsSnap
		r.inv.rows = invSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	productTenantID = "tenant-1"
	branchCentro    = "branch-centro"
	branchNorte     = "branch-norte"
)

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *fakeInventoryRepo) {
	t.Helper()
	products := newFakeProductRepo()
	inv := &fakeInventoryRepo{}
	branches := &fakeBranchRepo{branches: []*entity.Branch{
		{ID: branchCentro, TenantID: productTenantID, Name: "Centro", CreatedAt: time.Now()},
		{ID: branchNorte, TenantID: productTenantID, Name: "Norte", CreatedAt: time.Now()},
	}}
	runner := &fakeProductTxRunner{products: products, inv: inv}
	return usecase.NewProductUseCase(runner, products, branches), products, inv
}

func createProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:   "SKU-CAFE",
		Name:  "Café de grano",
		Price: 5000,
		Cost:  3000,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ProvisionaLedgerEnTodasLasSucursales(t *testing.T) {
	uc, _, inv := newProductFixture(t)

	out, err := uc.Create(context.Background(), productTenantID, createProductRequest())
	require.NoError(t, err)

	require.Len(t, inv.rows, 2, "una fila de ledger por sucursal del tenant")
	for _, row := range inv.rows {
		assert.Equal(t, out.ID, row.ProductID)
		assert.Equal(t, int64(0), row.Stock, "la provisión inicial siempre parte en cero")
		assert.Equal(t, int64(entity.DefaultReorderPoint), row.ReorderPoint)
	}
}

// Si la provisión de una sucursal falla, el alta completa se revierte: no queda
// un producto con ledger parcial y el reintento no choca con su propio SKU.
func TestCreateProduct_ProvisionFallidaRevierteElAlta(t *testing.T) {
	uc, products, inv := newProductFixture(t)
	inv.failBranchID = branchNorte

	_, err := uc.Create(context.Background(), productTenantID, createProductRequest())
	require.Error(t, err)

	assert.Empty(t, products.products, "el producto no queda en el catálogo")
	assert.Empty(t, inv.rows, "ninguna fila de ledger sobrevive al rollback")

	// Reintento con la infraestructura recuperada.
	inv.failBranchID = ""
	out, err := uc.Create(context.Background(), productTenantID, createProductRequest())
	require.NoError(t, err, "el reintento no debe fallar por SKU duplicado")
	assert.Equal(t, "SKU-CAFE", out.SKU)
	assert.Len(t, inv.rows, 2)
}

func TestCreateProduct_SKURepetidoEsDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	_, err := uc.Create(context.Background(), productTenantID, createProductRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), productTenantID, createProductRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
