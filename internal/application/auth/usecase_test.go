package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temucosoft/retail-api/internal/application/auth"
	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID

	// lookupErr simula un fallo de infraestructura en las consultas por email.
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: make(map[string]*entity.User)} }

func (f *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email && u.TenantID == tenantID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountByTenant(tenantID string) (int, error) { return len(f.users), nil }
func (f *fakeUserRepo) Update(user *entity.User) error             { return nil }
func (f *fakeUserRepo) Delete(id string) error                     { delete(f.users, id); return nil }

type fakeTenantRepo struct{ tenants map[string]*entity.Tenant }

func (f *fakeTenantRepo) Create(t *entity.Tenant) error { f.tenants[t.ID] = t; return nil }
func (f *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (f *fakeTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) { return nil, nil }
func (f *fakeTenantRepo) Update(t *entity.Tenant) error                    { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const authTenantID = "tenant-1"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tenantRepo := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		authTenantID: {ID: authTenantID, Name: "Farmacia Temuco", Status: "active", CreatedAt: time.Now()},
	}}
	uc := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "retail-api-test",
	})
	return uc, userRepo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "contraseña-larga",
		Name:     "Ana",
		TenantID: authTenantID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaClienteFinal(t *testing.T) {
	uc, userRepo := newAuthFixture(t)

	out, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleClienteFinal, out.Role, "el registro público siempre crea cliente_final")
	assert.Equal(t, authTenantID, out.TenantID)

	stored, err := userRepo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash, "la password nunca se guarda en plano")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo de infraestructura en la consulta de unicidad debe propagarse:
// tratarlo como "email libre" registraría usuarios duplicados a ciegas.
func TestRegisterUser_FalloDeRepositorioSePropaga(t *testing.T) {
	uc, userRepo := newAuthFixture(t)
	infraErr := errors.New("conexión perdida")
	userRepo.lookupErr = infraErr

	_, err := uc.RegisterUser(registerRequest())
	assert.ErrorIs(t, err, infraErr)
	assert.Empty(t, userRepo.users, "ningún usuario debe crearse tras el fallo")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmiteTokenParaCredencialesValidas(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
}
