package models

// Rôles utilisateur. Ensemble fermé : pas d'héritage, juste une table de
// capacités par (rôle, opération).
const (
	RoleCustomer      = "customer"
	RoleBusinessAdmin = "business_admin"
	RolePlatformAdmin = "platform_admin"
	RoleSuperAdmin    = "super_admin"
)

var adminRoles = map[string]bool{
	RoleBusinessAdmin: true,
	RolePlatformAdmin: true,
	RoleSuperAdmin:    true,
}

// IsAdminRole : vrai pour les trois rôles d'administration.
func IsAdminRole(role string) bool {
	return adminRoles[role]
}

// CanManageBusinesses : la création de business est réservée aux admins
// plateforme (plus strict que l'accès admin générique).
func CanManageBusinesses(role string) bool {
	return role == RolePlatformAdmin || role == RoleSuperAdmin
}

func IsValidRole(role string) bool {
	return role == RoleCustomer || adminRoles[role]
}
