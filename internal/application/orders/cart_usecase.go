package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
)

// CartUseCase maneja el carrito persistente (staging pre-checkout).
// El carrito no reserva stock: la disponibilidad se resuelve al checkout.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso de carrito.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem añade un producto al carrito. Si la fila (user, product) ya existe,
// la cantidad se acumula: añadir 2 y luego 3 deja 5.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		AddedAt:   time.Now(),
	}
	if err := uc.cartRepo.Add(item); err != nil {
		return nil, err
	}
	return uc.GetCart(ctx, userID)
}

// GetCart devuelve el carrito con precios vigentes del catálogo (referenciales:
// el precio real se congela al checkout).
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue // producto eliminado del catálogo después de añadirse
		}
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
			AddedAt:     item.AddedAt,
		})
		resp.Total += item.Quantity * product.Price
	}
	return resp, nil
}

// RemoveItem quita un producto del carrito.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	item, err := uc.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.DeleteByUser(userID)
}
