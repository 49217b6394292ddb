package usecase

import (
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

// RoleUseCase lectura de roles disponibles. La autenticación la impone el router;
// no hay restricción de rol para consultar el catálogo de roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso con el puerto de persistencia.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List lista todos los roles con su rango de privilegio.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	roles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{ID: r.ID, Name: r.Name, Rank: r.Rank()})
	}
	return &dto.RoleListResponse{Roles: out}, nil
}
