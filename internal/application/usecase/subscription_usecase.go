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

const subDateLayout = "2006-01-02"

// SubscriptionUseCase contratación y consulta de planes. Un tenant tiene a lo
// sumo una suscripción activa: contratar desactiva la anterior y crea la nueva
// en la misma transacción (nunca quedan dos activas ni ninguna a medio cambio).
type SubscriptionUseCase struct {
	txRunner   SubscriptionTxRunner
	repo       repository.SubscriptionRepository
	tenantRepo repository.TenantRepository
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(
	txRunner SubscriptionTxRunner,
	repo repository.SubscriptionRepository,
	tenantRepo repository.TenantRepository,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{txRunner: txRunner, repo: repo, tenantRepo: tenantRepo}
}

// Create contrata (o cambia) el plan del tenant.
func (uc *SubscriptionUseCase) Create(ctx context.Context, in dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if in.TenantID == "" || !entity.ValidPlan(in.PlanName) {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(subDateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(subDateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		TenantID:  in.TenantID,
		PlanName:  in.PlanName,
		StartDate: start,
		EndDate:   end,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.RunSubscription(ctx, func(subRepo repository.SubscriptionRepository) error {
		if err := subRepo.DeactivateByTenant(in.TenantID); err != nil {
			return err
		}
		return subRepo.Create(sub)
	})
	if err != nil {
		return nil, err
	}
	return toSubscriptionResponse(sub), nil
}

// GetActive devuelve la suscripción activa del tenant.
func (uc *SubscriptionUseCase) GetActive(tenantID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.repo.GetActiveByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(sub), nil
}

// List historial de suscripciones del tenant, más recientes primero.
func (uc *SubscriptionUseCase) List(tenantID string, page dto.PageRequest) (*dto.SubscriptionListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubscriptionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubscriptionResponse(s))
	}
	return &dto.SubscriptionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubscriptionResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		PlanName:  s.PlanName,
		StartDate: s.StartDate.Format(subDateLayout),
		EndDate:   s.EndDate.Format(subDateLayout),
		Active:    s.Active,
	}
}
