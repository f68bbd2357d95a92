package reports

import (
	"context"
	"time"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Granularidades aceptadas por el reporte de ventas.
const (
	GranularityDay   = "day"
	GranularityMonth = "month"
)

// UseCase reportes de solo lectura: stock valorizado, ventas por período y
// productos bajo punto de reorden. No muta estado; repetir la consulta sin
// transacciones de por medio devuelve lo mismo. Todo reporte tiene ámbito de
// tenant explícito: un tenantID vacío (operador de plataforma sin indicar a
// quién consulta) se rechaza en validación, no en la base.
type UseCase struct {
	repo       repository.ReportRepository
	branchRepo repository.BranchRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(repo repository.ReportRepository, branchRepo repository.BranchRepository) *UseCase {
	return &UseCase{repo: repo, branchRepo: branchRepo}
}

// StockReport stock valorizado por sucursal (o de todo el tenant si branchID
// es vacío): value = stock × precio de venta vigente.
func (uc *UseCase) StockReport(ctx context.Context, tenantID, branchID string) (*dto.StockReportResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkBranch(tenantID, branchID); err != nil {
		return nil, err
	}
	rows, err := uc.repo.StockByBranch(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockReportResponse{Rows: make([]dto.StockReportRowResponse, 0, len(rows))}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, dto.StockReportRowResponse{
			BranchID:    r.BranchID,
			BranchName:  r.BranchName,
			ProductID:   r.ProductID,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			Stock:       r.Stock,
			Value:       r.Value,
		})
		resp.TotalValue += r.Value
	}
	return resp, nil
}

// SalesReport ventas agregadas por día o mes dentro del rango. Fechas futuras
// o rango invertido son errores de validación.
func (uc *UseCase) SalesReport(ctx context.Context, tenantID, branchID, from, to, granularity string) (*dto.SalesReportResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if granularity != GranularityDay && granularity != GranularityMonth {
		return nil, domain.ErrInvalidInput
	}
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if toDate.Before(fromDate) {
		return nil, domain.ErrInvalidInput
	}
	today := time.Now().Truncate(24 * time.Hour)
	if fromDate.After(today) || toDate.After(today) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkBranch(tenantID, branchID); err != nil {
		return nil, err
	}

	buckets, err := uc.repo.SalesByPeriod(ctx, tenantID, branchID, fromDate, toDate, granularity)
	if err != nil {
		return nil, err
	}
	resp := &dto.SalesReportResponse{
		Granularity: granularity,
		From:        from,
		To:          to,
		Buckets:     make([]dto.SalesBucketResponse, 0, len(buckets)),
	}
	for _, b := range buckets {
		resp.Buckets = append(resp.Buckets, dto.SalesBucketResponse{
			Period:      b.Period,
			TotalAmount: b.TotalAmount,
			TxCount:     b.TxCount,
			AvgTicket:   b.AvgTicket,
		})
	}
	return resp, nil
}

// LowStockReport productos con stock bajo su punto de reorden. Informativo:
// no dispara ninguna reposición automática.
func (uc *UseCase) LowStockReport(ctx context.Context, tenantID, branchID string) (*dto.LowStockReportResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkBranch(tenantID, branchID); err != nil {
		return nil, err
	}
	rows, err := uc.repo.LowStock(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LowStockReportResponse{Rows: make([]dto.LowStockRowResponse, 0, len(rows))}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, dto.LowStockRowResponse{
			BranchID:     r.BranchID,
			BranchName:   r.BranchName,
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			Stock:        r.Stock,
			ReorderPoint: r.ReorderPoint,
		})
	}
	return resp, nil
}

// checkBranch valida que la sucursal (si se pidió una) pertenezca al tenant.
func (uc *UseCase) checkBranch(tenantID, branchID string) error {
	if branchID == "" {
		return nil
	}
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil || branch.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return nil
}
