package repository

import "github.com/jhoicas/dcpos-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	GetByID(id int) (*entity.Role, error)
	List() ([]*entity.Role, error)
}
