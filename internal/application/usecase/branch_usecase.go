package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

// BranchUseCase gestión de sucursales de una empresa.
type BranchUseCase struct {
	branchRepo  repository.BranchRepository
	companyRepo repository.CompanyRepository
}

// NewBranchUseCase construye el caso de uso con sus puertos de persistencia.
func NewBranchUseCase(branchRepo repository.BranchRepository, companyRepo repository.CompanyRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, companyRepo: companyRepo}
}

// Create crea una sucursal para una empresa existente. Exclusivo de global_admin.
func (uc *BranchUseCase) Create(id authz.Identity, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := authz.Authorize(id, authz.ActionCreate, authz.BranchTarget(companyID)); err != nil {
		return nil, err
	}
	if err := uc.ensureCompany(companyID); err != nil {
		return nil, err
	}
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		IsActive:  true,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// ListByCompany lista las sucursales de una empresa. Miembros del tenant o global_admin.
func (uc *BranchUseCase) ListByCompany(id authz.Identity, companyID string) (*dto.BranchListResponse, error) {
	if err := uc.ensureCompany(companyID); err != nil {
		return nil, err
	}
	if err := authz.Authorize(id, authz.ActionRead, authz.BranchTarget(companyID)); err != nil {
		return nil, err
	}
	branches, err := uc.branchRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{Items: items}, nil
}

// Update actualiza una sucursal. global_admin o el company_admin de la empresa dueña.
func (uc *BranchUseCase) Update(id authz.Identity, branchID string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.loadActive(branchID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(id, authz.ActionUpdate, authz.BranchTarget(branch.CompanyID)); err != nil {
		return nil, err
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Delete desactiva una sucursal (soft-delete). Exclusivo de global_admin.
// La sucursal debe pertenecer a la empresa indicada en la ruta.
func (uc *BranchUseCase) Delete(id authz.Identity, companyID, branchID string) error {
	if err := authz.Authorize(id, authz.ActionDelete, authz.BranchTarget(companyID)); err != nil {
		return err
	}
	branch, err := uc.loadActive(branchID)
	if err != nil {
		return err
	}
	if branch.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.branchRepo.Deactivate(branchID)
}

func (uc *BranchUseCase) ensureCompany(companyID string) error {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil || !company.IsActive {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *BranchUseCase) loadActive(branchID string) (*entity.Branch, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || !branch.IsActive {
		return nil, domain.ErrNotFound
	}
	return branch, nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
	}
}
