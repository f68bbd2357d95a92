package authz

import "github.com/temucosoft/retail-api/internal/domain/entity"

// roleRank ordena los roles por privilegio. La comparación jerárquica es el
// único punto del sistema que decide "rol X alcanza para Y": los handlers no
// mantienen listas propias de roles.
var roleRank = map[string]int{
	entity.RoleSuperAdmin:   5,
	entity.RoleAdminCliente: 4,
	entity.RoleGerente:      3,
	entity.RoleVendedor:     2,
	entity.RoleClienteFinal: 1,
}

// KnownRole informa si el rol existe en la jerarquía.
func KnownRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast informa si role tiene el privilegio de required o superior.
// super_admin pasa cualquier chequeo, incluso contra un required desconocido.
func RoleAtLeast(role, required string) bool {
	if role == entity.RoleSuperAdmin {
		return true
	}
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	req, ok := roleRank[required]
	if !ok {
		return false
	}
	return r >= req
}
