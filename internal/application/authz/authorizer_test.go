package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
)

type fakeSubSource struct {
	sub *entity.Subscription
	err error
}

func (f *fakeSubSource) GetActiveByTenant(tenantID string) (*entity.Subscription, error) {
	return f.sub, f.err
}

type fakeCounter struct {
	count int
	err   error
}

func (f *fakeCounter) CountByTenant(tenantID string) (int, error) {
	return f.count, f.err
}

func activeSub(plan string) *entity.Subscription {
	return &entity.Subscription{ID: "sub-1", TenantID: "t-1", PlanName: plan, Active: true}
}

func newAuthorizer(sub *entity.Subscription, branches, users int) *Authorizer {
	return NewAuthorizer(
		DefaultPlanCatalog(),
		&fakeSubSource{sub: sub},
		&fakeCounter{count: branches},
		&fakeCounter{count: users},
	)
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAtLeast(entity.RoleGerente, entity.RoleVendedor))
	assert.True(t, RoleAtLeast(entity.RoleGerente, entity.RoleGerente))
	assert.False(t, RoleAtLeast(entity.RoleVendedor, entity.RoleGerente))
	assert.False(t, RoleAtLeast(entity.RoleClienteFinal, entity.RoleVendedor))

	// super_admin pasa cualquier chequeo
	assert.True(t, RoleAtLeast(entity.RoleSuperAdmin, entity.RoleAdminCliente))
	assert.True(t, RoleAtLeast(entity.RoleSuperAdmin, "rol_inexistente"))

	// roles desconocidos no alcanzan nada
	assert.False(t, RoleAtLeast("rol_inexistente", entity.RoleClienteFinal))
	assert.False(t, RoleAtLeast("", entity.RoleClienteFinal))
}

func TestFeaturesFor(t *testing.T) {
	ctx := context.Background()

	t.Run("plan premium habilita todo", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanPremium), 0, 0)
		features, err := a.FeaturesFor(ctx, "t-1")
		require.NoError(t, err)
		assert.True(t, features.Reports)
		assert.True(t, features.APIAccess)
		assert.Equal(t, 0, features.MaxBranches)
	})

	t.Run("sin suscripción activa no hay features", func(t *testing.T) {
		a := newAuthorizer(nil, 0, 0)
		features, err := a.FeaturesFor(ctx, "t-1")
		require.NoError(t, err)
		assert.False(t, features.Reports)
		assert.False(t, features.APIAccess)
		assert.Equal(t, NoFeatures(), features)
	})

	t.Run("plan fuera del catálogo equivale a sin suscripción", func(t *testing.T) {
		a := newAuthorizer(activeSub("plan_fantasma"), 0, 0)
		features, err := a.FeaturesFor(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, NoFeatures(), features)
	})
}

func TestCanCreateBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("plan basic bajo el límite", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanBasic), 0, 0)
		assert.NoError(t, a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1"))
	})

	t.Run("plan basic en el límite rechaza", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanBasic), 1, 0)
		err := a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1")
		assert.ErrorIs(t, err, domain.ErrLimitExceeded)
	})

	t.Run("plan standard permite hasta 3", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanStandard), 2, 0)
		assert.NoError(t, a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1"))

		a = newAuthorizer(activeSub(entity.PlanStandard), 3, 0)
		assert.ErrorIs(t, a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1"), domain.ErrLimitExceeded)
	})

	t.Run("plan premium no tiene límite", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanPremium), 500, 0)
		assert.NoError(t, a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1"))
	})

	t.Run("rol insuficiente rechaza antes de mirar el plan", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanPremium), 0, 0)
		assert.ErrorIs(t, a.CanCreateBranch(ctx, entity.RoleGerente, "t-1"), domain.ErrForbidden)
		assert.ErrorIs(t, a.CanCreateBranch(ctx, entity.RoleVendedor, "t-1"), domain.ErrForbidden)
	})

	t.Run("sin suscripción activa rechaza", func(t *testing.T) {
		a := newAuthorizer(nil, 0, 0)
		assert.ErrorIs(t, a.CanCreateBranch(ctx, entity.RoleAdminCliente, "t-1"), domain.ErrLimitExceeded)
	})

	t.Run("super_admin ignora el límite del plan", func(t *testing.T) {
		a := newAuthorizer(nil, 999, 0)
		assert.NoError(t, a.CanCreateBranch(ctx, entity.RoleSuperAdmin, "t-1"))
	})
}

func TestCanCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("plan basic permite hasta 5", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanBasic), 0, 4)
		assert.NoError(t, a.CanCreateUser(ctx, entity.RoleAdminCliente, "t-1"))

		a = newAuthorizer(activeSub(entity.PlanBasic), 0, 5)
		assert.ErrorIs(t, a.CanCreateUser(ctx, entity.RoleAdminCliente, "t-1"), domain.ErrLimitExceeded)
	})

	t.Run("plan premium sin límite de usuarios", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanPremium), 0, 10000)
		assert.NoError(t, a.CanCreateUser(ctx, entity.RoleAdminCliente, "t-1"))
	})

	t.Run("rol insuficiente", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanPremium), 0, 0)
		assert.ErrorIs(t, a.CanCreateUser(ctx, entity.RoleVendedor, "t-1"), domain.ErrForbidden)
	})
}

func TestFeatureFlags(t *testing.T) {
	ctx := context.Background()

	t.Run("reports según plan", func(t *testing.T) {
		a := newAuthorizer(activeSub(entity.PlanBasic), 0, 0)
		ok, err := a.HasReports(ctx, entity.RoleGerente, "t-1")
		require.NoError(t, err)
		assert.False(t, ok)

		a = newAuthorizer(activeSub(entity.PlanStandard), 0, 0)
		ok, err = a.HasReports(ctx, entity.RoleGerente, "t-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("api access solo premium", func(t *testing.T) {
		for plan, want := range map[string]bool{
			entity.PlanBasic:    false,
			entity.PlanStandard: false,
			entity.PlanPremium:  true,
		} {
			a := newAuthorizer(activeSub(plan), 0, 0)
			ok, err := a.HasAPIAccess(ctx, entity.RoleAdminCliente, "t-1")
			require.NoError(t, err)
			assert.Equal(t, want, ok, "plan %s", plan)
		}
	})

	t.Run("super_admin siempre habilitado", func(t *testing.T) {
		a := newAuthorizer(nil, 0, 0)
		ok, err := a.HasReports(ctx, entity.RoleSuperAdmin, "")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = a.HasAPIAccess(ctx, entity.RoleSuperAdmin, "")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
