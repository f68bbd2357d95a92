package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. Al crear un producto se provisiona su fila
// de inventario en stock 0 para cada sucursal existente del tenant; alta y
// provisión corren en la misma transacción.
type ProductUseCase struct {
	txRunner   ProductTxRunner
	repo       repository.ProductRepository
	branchRepo repository.BranchRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner ProductTxRunner,
	repo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, branchRepo: branchRepo}
}

// allBranches límite alto para recorrer todas las sucursales del tenant al
// provisionar inventario (ningún plan permite más).
const allBranches = 1000

// Create crea un producto. El SKU es único global: repetirlo es ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, tenantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Price < 0 || in.Cost < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	branches, err := uc.branchRepo.ListByTenant(tenantID, allBranches, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		SupplierID:  in.SupplierID,
		Price:       in.Price,
		Cost:        in.Cost,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Alta y provisión inicial en una sola transacción: una fila de ledger en 0
	// por cada sucursal del tenant, para que la venta (estricta con filas
	// faltantes) encuentre registro. Si una provisión falla, el producto no
	// queda en el catálogo y el reintento no choca con su propio SKU.
	err = uc.txRunner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, branch := range branches {
			inv := &entity.Inventory{
				ID:           uuid.New().String(),
				BranchID:     branch.ID,
				ProductID:    product.ID,
				Stock:        0,
				ReorderPoint: entity.DefaultReorderPoint,
				UpdatedAt:    now,
			}
			if err := invRepo.Upsert(inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del tenant.
func (uc *ProductUseCase) GetByID(tenantID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto del tenant. El SKU no cambia después de creado.
func (uc *ProductUseCase) Update(tenantID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if *in.Cost < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del tenant.
func (uc *ProductUseCase) List(tenantID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto del tenant.
func (uc *ProductUseCase) Delete(tenantID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		SupplierID:  p.SupplierID,
		Price:       p.Price,
		Cost:        p.Cost,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
