package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// UseCase registra ventas POS y las consulta. La creación descuenta stock y
// persiste cabecera y líneas en una sola transacción.
type UseCase struct {
	txRunner    SaleTxRunner
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	saleRepo    repository.SaleRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner SaleTxRunner,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		branchRepo:  branchRepo,
		saleRepo:    saleRepo,
	}
}

// CreateSale registra una venta presencial. El precio unitario se congela del
// catálogo en el servidor; el cliente nunca manda precios. Si alguna línea no
// tiene stock suficiente (o la fila de inventario no existe) la venta completa
// se rechaza y el ledger queda intacto.
func (uc *UseCase) CreateSale(ctx context.Context, tenantID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.BranchID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	// Validar productos y congelar precios fuera de la tx (solo lectura).
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		if _, ok := productsByID[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.TenantID != tenantID {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		BranchID:      in.BranchID,
		UserID:        userID,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}
	items := make([]*entity.SaleItem, 0, len(in.Items))

	err = uc.txRunner.RunSale(ctx, func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		var total int64
		for _, item := range in.Items {
			product := productsByID[item.ProductID]

			inv, err := invRepo.GetForUpdate(in.BranchID, item.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				return &domain.NoInventoryRecordError{SKU: product.SKU, BranchID: in.BranchID}
			}
			if inv.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					SKU:       product.SKU,
					Requested: item.Quantity,
					Available: inv.Stock,
				}
			}
			inv.Stock -= item.Quantity
			inv.UpdatedAt = now
			if err := invRepo.Update(inv); err != nil {
				return err
			}

			line := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price, // congelado: cambios futuros del catálogo no afectan esta línea
			}
			items = append(items, line)
			total += item.Quantity * product.Price
		}

		sale.Total = total
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range items {
			if err := saleRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *UseCase) GetSale(ctx context.Context, tenantID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista las ventas de una sucursal, más recientes primero.
func (uc *UseCase) ListSales(ctx context.Context, tenantID, branchID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	sales, err := uc.saleRepo.ListByBranch(branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range sales {
		items, err := uc.saleRepo.GetItemsBySaleID(s.ID)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *toSaleResponse(s, items))
	}
	return out, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		BranchID:      sale.BranchID,
		UserID:        sale.UserID,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
		CreatedAt:     sale.CreatedAt,
	}
	for _, i := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			Quantity:  i.Quantity,
			Price:     i.Price,
			Subtotal:  i.Quantity * i.Price,
		})
	}
	return resp
}
