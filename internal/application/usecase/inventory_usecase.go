package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// InventoryUseCase administración manual del ledger: provisión de filas,
// ajustes de stock y de punto de reorden. Los movimientos transaccionales
// (venta, compra, checkout) no pasan por aquí.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, branchRepo: branchRepo, productRepo: productRepo}
}

// Create provisiona la fila (branch, product) del ledger.
func (uc *InventoryUseCase) Create(tenantID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.BranchID == "" || in.ProductID == "" || in.Stock < 0 || in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.Get(in.BranchID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	reorder := in.ReorderPoint
	if reorder == 0 {
		reorder = entity.DefaultReorderPoint
	}
	inv := &entity.Inventory{
		ID:           uuid.New().String(),
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		Stock:        in.Stock,
		ReorderPoint: reorder,
		UpdatedAt:    time.Now(),
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// GetByID obtiene una fila del ledger, verificando que la sucursal sea del tenant.
func (uc *InventoryUseCase) GetByID(tenantID, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkBranch(tenantID, inv.BranchID); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Update ajusta stock o punto de reorden de una fila.
func (uc *InventoryUseCase) Update(tenantID, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkBranch(tenantID, inv.BranchID); err != nil {
		return nil, err
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		inv.Stock = *in.Stock
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		inv.ReorderPoint = *in.ReorderPoint
	}
	inv.UpdatedAt = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// ListByBranch lista el ledger de una sucursal del tenant.
func (uc *InventoryUseCase) ListByBranch(tenantID, branchID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	if err := uc.checkBranch(tenantID, branchID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.ListByBranch(branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una fila del ledger.
func (uc *InventoryUseCase) Delete(tenantID, id string) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := uc.checkBranch(tenantID, inv.BranchID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *InventoryUseCase) checkBranch(tenantID, branchID string) error {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil || branch.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:           inv.ID,
		BranchID:     inv.BranchID,
		ProductID:    inv.ProductID,
		Stock:        inv.Stock,
		ReorderPoint: inv.ReorderPoint,
		UpdatedAt:    inv.UpdatedAt,
	}
}
