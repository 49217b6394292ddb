package repository

import "github.com/jhoicas/dcpos-api/internal/domain/entity"

// UserFilter filtros para listar usuarios. CompanyID nil = sin restricción
// (solo alcanzable por global_admin, el engine fuerza el scope antes).
type UserFilter struct {
	CompanyID *string
	BranchID  *string
}

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas cargan RoleName vía JOIN con role.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(filter UserFilter) ([]*entity.User, error)
	// Deactivate marca el usuario como inactivo (soft-delete).
	Deactivate(id string) error
	// DeactivateByCompany desactiva en bloque los usuarios de una empresa (cascada de soft-delete).
	DeactivateByCompany(companyID string) error
}
