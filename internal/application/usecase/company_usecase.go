package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

// CascadeRunner ejecuta la desactivación en cascada de una empresa dentro de una transacción.
// Lo implementa postgres.TxRunner; el uso de interfaz evita acoplar el use case a pgx.
type CascadeRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CompanyUseCase gestión de empresas (tenants).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   CascadeRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewCompanyUseCase(repo repository.CompanyRepository, tx CascadeRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create crea una empresa. Exclusivo de global_admin. Slug duplicado -> ErrDuplicate.
func (uc *CompanyUseCase) Create(id authz.Identity, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := authz.Authorize(id, authz.ActionCreate, authz.Target{Resource: authz.ResourceCompany}); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySlug(in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      in.Slug,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Cualquier miembro del tenant o global_admin.
func (uc *CompanyUseCase) GetByID(id authz.Identity, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.loadActive(companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(id, authz.ActionRead, authz.CompanyTarget(companyID)); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas. global_admin ve todas; los demás solo la suya
// (lista vacía si no tienen empresa asignada).
func (uc *CompanyUseCase) List(id authz.Identity, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	out := &dto.CompanyListResponse{
		Items: []dto.CompanyResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	if id.IsGlobalAdmin() {
		list, err := uc.repo.List(page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			out.Items = append(out.Items, *toCompanyResponse(c))
		}
		return out, nil
	}
	if id.CompanyID == nil {
		return out, nil
	}
	company, err := uc.repo.GetByID(*id.CompanyID)
	if err != nil {
		return nil, err
	}
	if company != nil && company.IsActive {
		out.Items = append(out.Items, *toCompanyResponse(company))
	}
	return out, nil
}

// Update actualiza una empresa. global_admin o el company_admin del tenant.
func (uc *CompanyUseCase) Update(id authz.Identity, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.loadActive(companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(id, authz.ActionUpdate, authz.CompanyTarget(companyID)); err != nil {
		return nil, err
	}
	if in.Slug != nil && *in.Slug != company.Slug {
		existing, err := uc.repo.GetBySlug(*in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		company.Slug = *in.Slug
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete desactiva una empresa y en cascada sus sucursales, usuarios y productos,
// todo dentro de una transacción. Exclusivo de global_admin.
func (uc *CompanyUseCase) Delete(ctx context.Context, id authz.Identity, companyID string) error {
	if err := authz.Authorize(id, authz.ActionDelete, authz.CompanyTarget(companyID)); err != nil {
		return err
	}
	if _, err := uc.loadActive(companyID); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.DeactivateByCompany(companyID); err != nil {
			return err
		}
		if err := userRepo.DeactivateByCompany(companyID); err != nil {
			return err
		}
		if err := branchRepo.DeactivateByCompany(companyID); err != nil {
			return err
		}
		return companyRepo.Deactivate(companyID)
	})
}

func (uc *CompanyUseCase) loadActive(companyID string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}
