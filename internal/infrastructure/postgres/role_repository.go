package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	db DB
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(db DB) *RoleRepo {
	return &RoleRepo{db: db}
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id int) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(context.Background(), `SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List devuelve todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.db.Query(context.Background(), `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
