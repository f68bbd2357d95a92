package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase registra compras a proveedor. La creación suma stock en la sucursal
// receptora, auto-provisionando la fila de inventario cuando no existe.
type UseCase struct {
	txRunner     PurchaseTxRunner
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	supplierRepo repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner PurchaseTxRunner,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	supplierRepo repository.SupplierRepository,
	purchaseRepo repository.PurchaseRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// CreatePurchase registra una compra. El costo unitario es el negociado en esta
// compra y no toca el Cost de referencia del producto. Fechas futuras se rechazan.
func (uc *UseCase) CreatePurchase(ctx context.Context, tenantID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || in.BranchID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// Comparación por día: una compra fechada hoy es válida hasta medianoche.
	today := time.Now().Truncate(24 * time.Hour)
	if date.After(today) {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || item.Cost < 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.TenantID != tenantID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		BranchID:   in.BranchID,
		Date:       date,
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	items := make([]*entity.PurchaseItem, 0, len(in.Items))

	err = uc.txRunner.RunPurchase(ctx, func(
		invRepo repository.InventoryRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		var total int64
		for _, item := range in.Items {
			inv, err := invRepo.GetForUpdate(in.BranchID, item.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				// Auto-provisión: la compra crea la fila del ledger en 0.
				inv = &entity.Inventory{
					ID:           uuid.New().String(),
					BranchID:     in.BranchID,
					ProductID:    item.ProductID,
					Stock:        0,
					ReorderPoint: entity.DefaultReorderPoint,
					UpdatedAt:    now,
				}
				if err := invRepo.Create(inv); err != nil {
					return err
				}
			}
			inv.Stock += item.Quantity
			inv.UpdatedAt = now
			if err := invRepo.Update(inv); err != nil {
				return err
			}

			line := &entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchase.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				Cost:       item.Cost,
			}
			items = append(items, line)
			total += item.Quantity * item.Cost
		}

		purchase.Total = total
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, line := range items {
			if err := purchaseRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPurchaseResponse(purchase, items), nil
}

// GetPurchase obtiene una compra con sus líneas.
func (uc *UseCase) GetPurchase(ctx context.Context, tenantID, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(purchase.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.GetItemsByPurchaseID(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// ListPurchases lista las compras recibidas en una sucursal.
func (uc *UseCase) ListPurchases(ctx context.Context, tenantID, branchID string, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.ListByBranch(branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(purchases)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range purchases {
		items, err := uc.purchaseRepo.GetItemsByPurchaseID(p.ID)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *toPurchaseResponse(p, items))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		BranchID:   p.BranchID,
		Date:       p.Date.Format(dateLayout),
		Total:      p.Total,
		Notes:      p.Notes,
		Items:      make([]dto.PurchaseItemResponse, 0, len(items)),
		CreatedAt:  p.CreatedAt,
	}
	for _, i := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			Quantity:  i.Quantity,
			Cost:      i.Cost,
			Subtotal:  i.Quantity * i.Cost,
		})
	}
	return resp
}
