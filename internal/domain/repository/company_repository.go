package repository

import "github.com/jhoicas/dcpos-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetBySlug(slug string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	// Deactivate marca la empresa como inactiva (soft-delete). La cascada a
	// sucursales/usuarios/productos se orquesta vía TxRunner.
	Deactivate(id string) error
}
