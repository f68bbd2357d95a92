package dto

import "github.com/shopspring/decimal"

// StockReportRowResponse fila del reporte de stock valorizado.
type StockReportRowResponse struct {
	BranchID    string `json:"branch_id"`
	BranchName  string `json:"branch_name"`
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
	Value       int64  `json:"value"` // stock × precio vigente, CLP
}

// StockReportResponse reporte de stock valorizado.
type StockReportResponse struct {
	Rows       []StockReportRowResponse `json:"rows"`
	TotalValue int64                    `json:"total_value"`
}

// SalesBucketResponse agregado de ventas de un período.
type SalesBucketResponse struct {
	Period      string          `json:"period"` // "2026-01-15" o "2026-01"
	TotalAmount int64           `json:"total_amount"`
	TxCount     int64           `json:"tx_count"`
	AvgTicket   decimal.Decimal `json:"avg_ticket"`
}

// SalesReportResponse reporte de ventas por día o mes.
type SalesReportResponse struct {
	Granularity string                `json:"granularity"` // day | month
	From        string                `json:"from"`
	To          string                `json:"to"`
	Buckets     []SalesBucketResponse `json:"buckets"`
}

// LowStockRowResponse producto bajo su punto de reorden.
type LowStockRowResponse struct {
	BranchID     string `json:"branch_id"`
	BranchName   string `json:"branch_name"`
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	Stock        int64  `json:"stock"`
	ReorderPoint int64  `json:"reorder_point"`
}

// LowStockReportResponse reporte de reposición pendiente.
type LowStockReportResponse struct {
	Rows []LowStockRowResponse `json:"rows"`
}
