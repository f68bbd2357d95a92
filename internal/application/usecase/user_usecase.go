package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/temucosoft/retail-api/internal/application/auth"
	"github.com/temucosoft/retail-api/internal/application/authz"
	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/domain"
	"github.com/temucosoft/retail-api/internal/domain/entity"
	"github.com/temucosoft/retail-api/internal/domain/repository"
	"github.com/temucosoft/retail-api/pkg/rut"
)

// UserUseCase alta y administración de usuarios por el admin del tenant.
// La creación está sujeta al límite MaxUsers del plan; el registro público
// (cliente_final) vive en el paquete auth.
type UserUseCase struct {
	repo       repository.UserRepository
	authorizer *authz.Authorizer
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, authorizer *authz.Authorizer) *UserUseCase {
	return &UserUseCase{repo: repo, authorizer: authorizer}
}

// Create crea un usuario de staff dentro del tenant del caller. Nadie crea
// super_admin por esta vía ni un rol por encima del propio.
func (uc *UserUseCase) Create(ctx context.Context, callerRole, tenantID string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if !authz.KnownRole(role) || role == entity.RoleSuperAdmin {
		return nil, domain.ErrInvalidInput
	}
	if !authz.RoleAtLeast(callerRole, role) {
		return nil, domain.ErrForbidden
	}
	if in.RUT != "" {
		if err := rut.Validate(in.RUT); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.authorizer.CanCreateUser(ctx, callerRole, tenantID); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByEmailAndTenant(in.Email, tenantID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		RUT:          rut.Normalize(in.RUT),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario del tenant.
func (uc *UserUseCase) GetByID(tenantID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista los usuarios del tenant.
func (uc *UserUseCase) List(tenantID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete desactiva el acceso eliminando el usuario del tenant.
func (uc *UserUseCase) Delete(tenantID, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.TenantID != tenantID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
