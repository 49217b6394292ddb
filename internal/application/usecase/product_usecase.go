package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos por empresa. SKU único por empresa.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso con sus puertos de persistencia.
func NewProductUseCase(productRepo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, companyRepo: companyRepo}
}

// Create crea un producto. company_admin queda forzado a su propia empresa;
// global_admin debe indicar la empresa destino. SKU duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(id authz.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	companyID, err := authz.EffectiveCompany(id, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if companyID == nil {
		// Un producto sin empresa dueña es entrada incompleta.
		return nil, domain.ErrInvalidInput
	}
	if err := authz.Authorize(id, authz.ActionCreate, authz.ProductTarget(*companyID)); err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(*companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.productRepo.GetByCompanyAndSKU(*companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: *companyID,
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     in.Price,
		Cost:      in.Cost,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Cualquier miembro del tenant dueño o global_admin.
func (uc *ProductUseCase) GetByID(id authz.Identity, productID string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Authorize(id, authz.ActionRead, authz.ProductTarget(product.CompanyID)); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda y paginación. El scope de empresa se inyecta
// según el rol; un filtro en conflicto del cliente se ignora en silencio.
func (uc *ProductUseCase) List(id authz.Identity, companyID *string, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	scope, err := authz.ListScope(id, companyID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	products, err := uc.productRepo.List(repository.ProductFilter{
		CompanyID: scope,
		Search:    search,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza un producto. Admins del tenant dueño; SKU nuevo debe seguir único en la empresa.
func (uc *ProductUseCase) Update(id authz.Identity, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Authorize(id, authz.ActionUpdate, authz.ProductTarget(product.CompanyID)); err != nil {
		return nil, err
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.productRepo.GetByCompanyAndSKU(product.CompanyID, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete desactiva un producto (soft-delete). Admins del tenant dueño.
func (uc *ProductUseCase) Delete(id authz.Identity, productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := authz.Authorize(id, authz.ActionDelete, authz.ProductTarget(product.CompanyID)); err != nil {
		return err
	}
	return uc.productRepo.Deactivate(productID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
