package entity

import "time"

// Roles válidos para User, en orden descendente de privilegio.
const (
	RoleSuperAdmin   = "super_admin"   // operador de la plataforma
	RoleAdminCliente = "admin_cliente" // administrador del tenant
	RoleGerente      = "gerente"
	RoleVendedor     = "vendedor"
	RoleClienteFinal = "cliente_final"
)

// User representa un usuario del sistema. TenantID es vacío solo para el
// operador de la plataforma (super_admin).
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RUT          string // opcional, validado con módulo 11 chileno
	Role         string // ver constantes Role*
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
