package repository

import "github.com/jhoicas/dcpos-api/internal/domain/entity"

// ProductFilter filtros de listado. CompanyID nil = todo el sistema (solo global_admin).
// Search busca por nombre o SKU (ILIKE).
type ProductFilter struct {
	CompanyID *string
	Search    string
	Limit     int
	Offset    int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Deactivate(id string) error
	DeactivateByCompany(companyID string) error
}
