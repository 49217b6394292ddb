package entity

// Roles conocidos del sistema. La tabla role puede contener otros (accountant, etc.);
// cualquier rol no administrativo cae en el rango de staff.
const (
	RoleGlobalAdmin  = "global_admin"
	RoleCompanyAdmin = "company_admin"
	RoleCashier      = "cashier"
)

// Rangos de privilegio. El orden total se deriva del nombre del rol,
// nunca del ID de base de datos.
const (
	RankStaff        = 1
	RankCompanyAdmin = 2
	RankGlobalAdmin  = 3
)

// Role representa un rol asignable a usuarios. Inmutable una vez referenciado.
type Role struct {
	ID   int
	Name string
}

// RankOf devuelve el rango de privilegio para un nombre de rol.
func RankOf(roleName string) int {
	switch roleName {
	case RoleGlobalAdmin:
		return RankGlobalAdmin
	case RoleCompanyAdmin:
		return RankCompanyAdmin
	default:
		return RankStaff
	}
}

// Rank rango de privilegio del rol.
func (r Role) Rank() int {
	return RankOf(r.Name)
}
