package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/application/reports"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	stockRows []repository.StockReportRow
	buckets   []repository.SalesBucket
	lowRows   []repository.LowStockRow

	// filtros recibidos en la última llamada, para verificar el cableado
	gotTenantID    string
	gotBranchID    string
	gotFrom, gotTo time.Time
	gotGranularity string
}

func (f *fakeReportRepo) StockByBranch(ctx context.Context, tenantID, branchID string) ([]repository.StockReportRow, error) {
	f.gotTenantID, f.gotBranchID = tenantID, branchID
	return f.stockRows, nil
}

func (f *fakeReportRepo) SalesByPeriod(ctx context.Context, tenantID, branchID string, from, to time.Time, granularity string) ([]repository.SalesBucket, error) {
	f.gotTenantID, f.gotBranchID = tenantID, branchID
	f.gotFrom, f.gotTo = from, to
	f.gotGranularity = granularity
	return f.buckets, nil
}

func (f *fakeReportRepo) LowStock(ctx context.Context, tenantID, branchID string) ([]repository.LowStockRow, error) {
	f.gotTenantID, f.gotBranchID = tenantID, branchID
	return f.lowRows, nil
}

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
func (f *fakeBranchRepo) CountByTenant(tenantID string) (int, error) { return len(f.branches), nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error              { return nil }
func (f *fakeBranchRepo) Delete(id string) error                     { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	reportTenantID = "tenant-1"
	reportBranchID = "branch-1"
)

func newReportFixture(t *testing.T) (*reports.UseCase, *fakeReportRepo) {
	t.Helper()
	repo := &fakeReportRepo{}
	branches := &fakeBranchRepo{branches: map[string]*entity.Branch{
		reportBranchID: {ID: reportBranchID, TenantID: reportTenantID, Name: "Temuco Centro"},
	}}
	return reports.NewUseCase(repo, branches), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReport_SumaValorTotal(t *testing.T) {
	uc, repo := newReportFixture(t)
	repo.stockRows = []repository.StockReportRow{
		{BranchID: reportBranchID, BranchName: "Temuco Centro", ProductID: "p1", SKU: "SKU-1", ProductName: "Café", Stock: 10, Value: 10000},
		{BranchID: reportBranchID, BranchName: "Temuco Centro", ProductID: "p2", SKU: "SKU-2", ProductName: "Té", Stock: 4, Value: 2000},
	}

	out, err := uc.StockReport(context.Background(), reportTenantID, reportBranchID)
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, int64(12000), out.TotalValue, "TotalValue es la suma de los valores por fila")
	assert.Equal(t, reportBranchID, repo.gotBranchID, "el filtro de sucursal llega al repositorio")
}

func TestStockReport_SinSucursalAbarcaTodoElTenant(t *testing.T) {
	uc, repo := newReportFixture(t)

	_, err := uc.StockReport(context.Background(), reportTenantID, "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.gotBranchID, "branchID vacío significa todo el tenant")
}

// El operador de plataforma lleva tenant_id vacío en el token: si no indica a
// qué tenant consulta, el reporte se rechaza en validación antes de tocar la
// base (un "" jamás debe llegar como parámetro uuid de la query).
func TestReportes_SinAmbitoDeTenantEsValidacion(t *testing.T) {
	uc, repo := newReportFixture(t)

	_, err := uc.StockReport(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SalesReport(context.Background(), "", "", "2026-07-01", "2026-07-31", reports.GranularityDay)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.LowStockReport(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.gotTenantID, "el repositorio nunca se consulta sin tenant")
}

func TestStockReport_SucursalDeOtroTenant(t *testing.T) {
	uc, repo := newReportFixture(t)

	_, err := uc.StockReport(context.Background(), "tenant-ajeno", reportBranchID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.gotTenantID, "el repositorio no llega a consultarse")
}

func TestSalesReport_PropagaRangoYGranularidad(t *testing.T) {
	uc, repo := newReportFixture(t)
	repo.buckets = []repository.SalesBucket{
		{Period: "2026-07", TotalAmount: 50000, TxCount: 5, AvgTicket: decimal.NewFromInt(10000)},
	}

	out, err := uc.SalesReport(context.Background(), reportTenantID, "", "2026-07-01", "2026-07-31", reports.GranularityMonth)
	require.NoError(t, err)

	assert.Equal(t, reports.GranularityMonth, repo.gotGranularity)
	assert.Equal(t, "2026-07-01", repo.gotFrom.Format("2006-01-02"))
	assert.Equal(t, "2026-07-31", repo.gotTo.Format("2006-01-02"))
	require.Len(t, out.Buckets, 1)
	assert.Equal(t, int64(50000), out.Buckets[0].TotalAmount)
	assert.True(t, out.Buckets[0].AvgTicket.Equal(decimal.NewFromInt(10000)))
}

func TestSalesReport_RechazaGranularidadDesconocida(t *testing.T) {
	uc, _ := newReportFixture(t)

	_, err := uc.SalesReport(context.Background(), reportTenantID, "", "2026-07-01", "2026-07-31", "week")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesReport_RechazaRangoInvertido(t *testing.T) {
	uc, _ := newReportFixture(t)

	_, err := uc.SalesReport(context.Background(), reportTenantID, "", "2026-07-31", "2026-07-01", reports.GranularityDay)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesReport_RechazaFechasFuturas(t *testing.T) {
	uc, _ := newReportFixture(t)
	future := time.Now().Add(72 * time.Hour).Format("2006-01-02")

	_, err := uc.SalesReport(context.Background(), reportTenantID, "", "2026-01-01", future, reports.GranularityDay)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesReport_RechazaFormatoDeFechaInvalido(t *testing.T) {
	uc, _ := newReportFixture(t)

	_, err := uc.SalesReport(context.Background(), reportTenantID, "", "01-07-2026", "2026-07-31", reports.GranularityDay)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStockReport_DevuelveFilasDelRepositorio(t *testing.T) {
	uc, repo := newReportFixture(t)
	repo.lowRows = []repository.LowStockRow{
		{BranchID: reportBranchID, BranchName: "Temuco Centro", ProductID: "p1", SKU: "SKU-1", ProductName: "Café", Stock: 2, ReorderPoint: 10},
	}

	out, err := uc.LowStockReport(context.Background(), reportTenantID, reportBranchID)
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, int64(2), out.Rows[0].Stock)
	assert.Equal(t, int64(10), out.Rows[0].ReorderPoint)
}
