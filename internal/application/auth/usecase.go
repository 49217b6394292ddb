package auth

import (
	"time"

	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
	"github.com/jhoicas/dcpos-api/pkg/jwt"
	"github.com/jhoicas/dcpos-api/pkg/password"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret           string
	AccessExpMinutes int
	RefreshExpDays   int
	Issuer           string
}

// UseCase casos de uso de autenticación: login, rotación de refresh y
// resolución de identidad (token -> usuario vivo).
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite un par access+refresh.
// Credenciales inválidas -> ErrUnauthorized; cuenta inactiva -> ErrForbidden.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	return uc.issuePair(user)
}

// Refresh valida un refresh token y emite un par nuevo (rotación).
// Un access token presentado aquí es rechazado por el kind firmado.
// El refresh anterior no se invalida server-side: la revocación lógica es por expiración.
func (uc *UseCase) Refresh(in dto.RefreshRequest) (*dto.TokenResponse, error) {
	subject, err := jwt.Parse(uc.jwtCfg.Secret, in.RefreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return uc.issuePair(user)
}

// Resolve decodifica un access token y carga el usuario vivo correspondiente.
// Token inválido/expirado -> ErrUnauthorized; usuario ausente o inactivo -> ErrUserNotFound.
// Toda ruta protegida pasa por aquí antes de cualquier acceso a datos.
func (uc *UseCase) Resolve(token string) (*authz.Identity, error) {
	subject, err := jwt.Parse(uc.jwtCfg.Secret, token, jwt.KindAccess)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return &authz.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		RoleName:  user.RoleName,
		Rank:      user.Rank(),
		CompanyID: user.CompanyID,
		BranchID:  user.BranchID,
	}, nil
}

// Me devuelve la proyección pública del usuario autenticado.
func (uc *UseCase) Me(id authz.Identity) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

func (uc *UseCase) issuePair(user *entity.User) (*dto.TokenResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, jwt.KindAccess, uc.jwtCfg.Issuer,
		time.Duration(uc.jwtCfg.AccessExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, jwt.KindRefresh, uc.jwtCfg.Issuer,
		time.Duration(uc.jwtCfg.RefreshExpDays)*24*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		Role:         user.RoleName,
	}, nil
}

// ToUserResponse proyecta un entity.User a su vista pública, campo a campo.
// El password hash nunca sale de la capa de aplicación.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		RoleID:    u.RoleID,
		RoleName:  u.RoleName,
		CompanyID: u.CompanyID,
		BranchID:  u.BranchID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
