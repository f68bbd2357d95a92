package authz

import (
	"context"

	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
)

// SubscriptionSource resuelve la suscripción activa de un tenant (nil si no hay).
type SubscriptionSource interface {
	GetActiveByTenant(tenantID string) (*entity.Subscription, error)
}

// TenantCounter cuenta recursos existentes de un tenant (sucursales, usuarios).
type TenantCounter interface {
	CountByTenant(tenantID string) (int, error)
}

// Authorizer combina los dos ejes de autorización: capacidad del rol y
// features/límites del plan del tenant. Ambos deben pasar (conjunción);
// super_admin omite el eje de plan por completo.
type Authorizer struct {
	catalog    PlanCatalog
	subRepo    SubscriptionSource
	branchRepo TenantCounter
	userRepo   TenantCounter
}

// NewAuthorizer construye el autorizador con el catálogo de planes inyectado.
func NewAuthorizer(
	catalog PlanCatalog,
	subRepo SubscriptionSource,
	branchRepo TenantCounter,
	userRepo TenantCounter,
) *Authorizer {
	return &Authorizer{
		catalog:    catalog,
		subRepo:    subRepo,
		branchRepo: branchRepo,
		userRepo:   userRepo,
	}
}

// FeaturesFor resuelve las features vigentes del tenant. Sin suscripción
// activa, o con un plan fuera del catálogo, no hay features (deny por defecto).
func (a *Authorizer) FeaturesFor(ctx context.Context, tenantID string) (PlanFeatures, error) {
	if tenantID == "" {
		return NoFeatures(), nil
	}
	sub, err := a.subRepo.GetActiveByTenant(tenantID)
	if err != nil {
		return PlanFeatures{}, err
	}
	if sub == nil {
		return NoFeatures(), nil
	}
	features, ok := a.catalog[sub.PlanName]
	if !ok {
		return NoFeatures(), nil
	}
	return features, nil
}

// CanCreateBranch verifica rol admin_cliente+ y el límite MaxBranches del plan.
func (a *Authorizer) CanCreateBranch(ctx context.Context, role, tenantID string) error {
	if !RoleAtLeast(role, entity.RoleAdminCliente) {
		return domain.ErrForbidden
	}
	if role == entity.RoleSuperAdmin {
		return nil
	}
	features, err := a.FeaturesFor(ctx, tenantID)
	if err != nil {
		return err
	}
	count, err := a.branchRepo.CountByTenant(tenantID)
	if err != nil {
		return err
	}
	if limitReached(count, features.MaxBranches) {
		return domain.ErrLimitExceeded
	}
	return nil
}

// CanCreateUser verifica rol admin_cliente+ y el límite MaxUsers del plan.
func (a *Authorizer) CanCreateUser(ctx context.Context, role, tenantID string) error {
	if !RoleAtLeast(role, entity.RoleAdminCliente) {
		return domain.ErrForbidden
	}
	if role == entity.RoleSuperAdmin {
		return nil
	}
	features, err := a.FeaturesFor(ctx, tenantID)
	if err != nil {
		return err
	}
	count, err := a.userRepo.CountByTenant(tenantID)
	if err != nil {
		return err
	}
	if limitReached(count, features.MaxUsers) {
		return domain.ErrLimitExceeded
	}
	return nil
}

// HasReports informa si el tenant puede usar reportes (el rol se chequea aparte
// en el middleware). super_admin siempre puede.
func (a *Authorizer) HasReports(ctx context.Context, role, tenantID string) (bool, error) {
	if role == entity.RoleSuperAdmin {
		return true, nil
	}
	features, err := a.FeaturesFor(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return features.Reports, nil
}

// HasAPIAccess informa si el tenant puede usar la superficie de integración
// programática. Solo el plan premium la habilita; super_admin siempre puede.
func (a *Authorizer) HasAPIAccess(ctx context.Context, role, tenantID string) (bool, error) {
	if role == entity.RoleSuperAdmin {
		return true, nil
	}
	features, err := a.FeaturesFor(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return features.APIAccess, nil
}
