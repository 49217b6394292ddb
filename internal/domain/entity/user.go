package entity

import "time"

// User representa un usuario del sistema. CompanyID y BranchID son opcionales:
// un global_admin no pertenece a ninguna empresa.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       int
	RoleName     string // cargado vía JOIN con role; fuente del rango de privilegio
	CompanyID    *string
	BranchID     *string
	IsActive     bool
	CreatedAt    time.Time
}

// Rank rango de privilegio del usuario según su rol.
func (u *User) Rank() int {
	return RankOf(u.RoleName)
}
