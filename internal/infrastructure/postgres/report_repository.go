package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/temucosoft/retail-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes. Trabaja siempre sobre el
// pool (nunca dentro de una tx de negocio): cada consulta es un snapshot.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockByBranch stock valorizado: value = stock × precio de venta vigente.
// branchID vacío cubre todas las sucursales del tenant.
func (r *ReportRepo) StockByBranch(ctx context.Context, tenantID, branchID string) ([]repository.StockReportRow, error) {
	const query = `
	SELECT
	    b.id,
	    b.name,
	    p.id,
	    p.name,
	    p.sku,
	    i.stock,
	    i.stock * p.price AS value
	FROM inventories i
	JOIN branches b ON b.id = i.branch_id
	JOIN products p ON p.id = i.product_id
	WHERE b.tenant_id = $1
	  AND ($2 = '' OR i.branch_id = $2::uuid)
	ORDER BY b.name ASC, p.name ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, branchID)
	if err != nil {
		return nil, fmt.Errorf("reports.StockByBranch: %w", err)
	}
	defer rows.Close()

	var results []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(
			&row.BranchID,
			&row.BranchName,
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.Stock,
			&row.Value,
		); err != nil {
			return nil, fmt.Errorf("reports.StockByBranch scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByPeriod agrega ventas por día o mes: monto total, número de
// transacciones y ticket promedio (NUMERIC -> decimal).
func (r *ReportRepo) SalesByPeriod(ctx context.Context, tenantID, branchID string, from, to time.Time, granularity string) ([]repository.SalesBucket, error) {
	format := "YYYY-MM-DD"
	if granularity == "month" {
		format = "YYYY-MM"
	}
	const query = `
	SELECT
	    to_char(s.created_at, $5) AS period,
	    SUM(s.total)              AS total_amount,
	    COUNT(*)                  AS tx_count,
	    AVG(s.total)              AS avg_ticket
	FROM sales s
	JOIN branches b ON b.id = s.branch_id
	WHERE b.tenant_id = $1
	  AND ($2 = '' OR s.branch_id = $2::uuid)
	  AND s.created_at >= $3
	  AND s.created_at < $4::timestamp + interval '1 day'
	GROUP BY period
	ORDER BY period ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, branchID, from, to, format)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesBucket
	for rows.Next() {
		var row repository.SalesBucket
		if err := rows.Scan(
			&row.Period,
			&row.TotalAmount,
			&row.TxCount,
			&row.AvgTicket,
		); err != nil {
			return nil, fmt.Errorf("reports.SalesByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock productos con stock estrictamente bajo su punto de reorden.
func (r *ReportRepo) LowStock(ctx context.Context, tenantID, branchID string) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    b.id,
	    b.name,
	    p.id,
	    p.sku,
	    p.name,
	    i.stock,
	    i.reorder_point
	FROM inventories i
	JOIN branches b ON b.id = i.branch_id
	JOIN products p ON p.id = i.product_id
	WHERE b.tenant_id = $1
	  AND ($2 = '' OR i.branch_id = $2::uuid)
	  AND i.stock < i.reorder_point
	ORDER BY b.name ASC, i.stock ASC`

	rows, err := r.pool.Query(ctx, query, tenantID, branchID)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.BranchID,
			&row.BranchName,
			&row.ProductID,
			&row.SKU,
			&row.ProductName,
			&row.Stock,
			&row.ReorderPoint,
		); err != nil {
			return nil, fmt.Errorf("reports.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
