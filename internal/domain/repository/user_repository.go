package repository

import "github.com/temucosoft/retail-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error)
	// CountByTenant cuenta los usuarios del tenant; usado por el límite MaxUsers del plan.
	CountByTenant(tenantID string) (int, error)
	Update(user *entity.User) error
	Delete(id string) error
}
