package sales

import (
	"context"
	"fmt"

	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ReceiptLine una línea de la venta enriquecida con el producto para el comprobante.
type ReceiptLine struct {
	ProductName string
	SKU         string
	Quantity    int64
	Price       int64 // precio unitario histórico, CLP
}

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(
		ctx context.Context,
		sale *entity.Sale,
		tenant *entity.Tenant,
		branch *entity.Branch,
		lines []ReceiptLine,
	) ([]byte, error)
}

// ReceiptUseCase arma el comprobante PDF de una venta POS.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	branchRepo  repository.BranchRepository
	tenantRepo  repository.TenantRepository
	productRepo repository.ProductRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	branchRepo repository.BranchRepository,
	tenantRepo repository.TenantRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		branchRepo:  branchRepo,
		tenantRepo:  tenantRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadReceipt recupera la venta con sus líneas, verifica que pertenezca al
// tenant del token y genera el PDF. Retorna los bytes y el filename sugerido.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, tenantID, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener sucursal: %w", err)
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, "", domain.ErrNotFound
	}
	tenant, err := uc.tenantRepo.GetByID(branch.TenantID)
	if err != nil || tenant == nil {
		return nil, "", fmt.Errorf("receipt: obtener empresa: %w", err)
	}

	items, err := uc.saleRepo.GetItemsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		name := "Producto " + item.ProductID // fallback
		sku := ""
		if product, pErr := uc.productRepo.GetByID(item.ProductID); pErr == nil && product != nil {
			name = product.Name
			sku = product.SKU
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			SKU:         sku,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	pdfBytes, err := uc.generator.GenerateSaleReceipt(ctx, sale, tenant, branch, lines)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("boleta_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
