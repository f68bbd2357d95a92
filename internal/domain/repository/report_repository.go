package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockReportRow una fila del reporte de stock valorizado.
type StockReportRow struct {
	BranchID    string
	BranchName  string
	ProductID   string
	ProductName string
	SKU         string
	Stock       int64
	Value       int64 // stock × precio de venta vigente, en CLP
}

// SalesBucket agregado de ventas de un período (día o mes).
type SalesBucket struct {
	Period      string // "2026-01-15" o "2026-01" según granularidad
	TotalAmount int64
	TxCount     int64
	AvgTicket   decimal.Decimal // AVG(total), NUMERIC en la DB
}

// LowStockRow producto bajo su punto de reorden.
type LowStockRow struct {
	BranchID     string
	BranchName   string
	ProductID    string
	SKU          string
	ProductName  string
	Stock        int64
	ReorderPoint int64
}

// ReportRepository consultas de solo lectura para reportes. No muta nada;
// es seguro frente a transacciones en vuelo (los reportes son un snapshot).
type ReportRepository interface {
	StockByBranch(ctx context.Context, tenantID, branchID string) ([]StockReportRow, error)
	SalesByPeriod(ctx context.Context, tenantID, branchID string, from, to time.Time, granularity string) ([]SalesBucket, error)
	LowStock(ctx context.Context, tenantID, branchID string) ([]LowStockRow, error)
}
