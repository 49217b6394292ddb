package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/dcpos-api/internal/application/auth"
	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
	"github.com/jhoicas/dcpos-api/pkg/password"
)

// UserUseCase gestión de usuarios con reglas de tenant y rango.
type UserUseCase struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	companyRepo repository.CompanyRepository
	branchRepo  repository.BranchRepository
}

// NewUserUseCase construye el caso de uso con sus puertos de persistencia.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository,
	companyRepo repository.CompanyRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo, companyRepo: companyRepo, branchRepo: branchRepo}
}

// Create crea un usuario. El tenant efectivo se fuerza al del admin si no viene;
// un company_id ajeno o un rol de rango >= al del admin se rechazan con Forbidden.
func (uc *UserUseCase) Create(id authz.Identity, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}

	companyID, err := authz.EffectiveCompany(id, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(id, authz.ActionCreate, authz.UserTarget("", companyID, role.Rank())); err != nil {
		return nil, err
	}

	if companyID != nil {
		company, err := uc.companyRepo.GetByID(*companyID)
		if err != nil {
			return nil, err
		}
		if company == nil || !company.IsActive {
			return nil, domain.ErrNotFound
		}
	}
	if in.BranchID != nil {
		if err := uc.validateBranch(*in.BranchID, companyID); err != nil {
			return nil, err
		}
	}

	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		RoleID:       role.ID,
		RoleName:     role.Name,
		CompanyID:    companyID,
		BranchID:     in.BranchID,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario. Auto-acceso siempre permitido; el resto según tenant.
func (uc *UserUseCase) GetByID(id authz.Identity, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Authorize(id, authz.ActionRead, authz.UserTarget(user.ID, user.CompanyID, user.Rank())); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios. Solo admins; el filtro de empresa de un company_admin
// se fuerza a su propia empresa ignorando el solicitado.
func (uc *UserUseCase) List(id authz.Identity, companyID, branchID *string) (*dto.UserListResponse, error) {
	if !id.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	scope, err := authz.ListScope(id, companyID)
	if err != nil {
		return nil, err
	}
	if branchID != nil && scope != nil {
		if err := uc.validateBranch(*branchID, scope); err != nil {
			return nil, err
		}
	}
	users, err := uc.userRepo.List(repository.UserFilter{CompanyID: scope, BranchID: branchID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Update actualiza un usuario. El auto-acceso cubre solo campos no privilegiados
// (username, password); rol y estado requieren un admin de rango superior al objetivo.
func (uc *UserUseCase) Update(id authz.Identity, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	targetRank := user.Rank()
	var newRole *entity.Role
	if in.RoleID != nil && *in.RoleID != user.RoleID {
		newRole, err = uc.roleRepo.GetByID(*in.RoleID)
		if err != nil {
			return nil, err
		}
		if newRole == nil {
			return nil, domain.ErrNotFound
		}
		if newRole.Rank() > targetRank {
			targetRank = newRole.Rank()
		}
	}

	if err := authz.Authorize(id, authz.ActionUpdate, authz.UserTarget(user.ID, user.CompanyID, targetRank)); err != nil {
		return nil, err
	}
	if user.ID == id.UserID && !id.IsGlobalAdmin() {
		// Vía auto-acceso: prohibido tocar rol y estado del propio registro.
		if in.RoleID != nil || in.IsActive != nil {
			return nil, domain.ErrForbidden
		}
	}

	if in.Username != nil && *in.Username != user.Username {
		existing, err := uc.userRepo.GetByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if newRole != nil {
		user.RoleID = newRole.ID
		user.RoleName = newRole.Name
	}
	if in.BranchID != nil {
		if err := uc.validateBranch(*in.BranchID, user.CompanyID); err != nil {
			return nil, err
		}
		user.BranchID = in.BranchID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete desactiva un usuario (soft-delete). Auto-eliminación denegada.
func (uc *UserUseCase) Delete(id authz.Identity, userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := authz.Authorize(id, authz.ActionDelete, authz.UserTarget(user.ID, user.CompanyID, user.Rank())); err != nil {
		return err
	}
	return uc.userRepo.Deactivate(userID)
}

// validateBranch verifica que la sucursal exista y pertenezca al tenant efectivo.
// Una sucursal sin empresa que la contextualice es entrada incompleta (BadRequest).
func (uc *UserUseCase) validateBranch(branchID string, companyID *string) error {
	if companyID == nil {
		return domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil || !branch.IsActive || branch.CompanyID != *companyID {
		return domain.ErrNotFound
	}
	return nil
}
