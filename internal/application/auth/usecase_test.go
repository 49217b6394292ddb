package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dcpos-api/internal/application/auth"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/dcpos-api/pkg/jwt"
	"github.com/jhoicas/dcpos-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:       map[string]*entity.User{},
		byUsername: map[string]*entity.User{},
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) List(repository.UserFilter) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Deactivate(id string) error {
	if u, ok := r.byID[id]; ok {
		u.IsActive = false
	}
	return nil
}

func (r *fakeUserRepo) DeactivateByCompany(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:           testSecret,
		AccessExpMinutes: 60,
		RefreshExpDays:   7,
		Issuer:           "dcpos-test",
	}
}

func testUser(t *testing.T, plain string) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	return &entity.User{
		ID:           testUserID,
		Username:     "caja1",
		PasswordHash: hash,
		RoleID:       3,
		RoleName:     entity.RoleCashier,
		IsActive:     true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteParDeTokens(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, entity.RoleCashier, out.Role)

	// Ambos tokens apuntan al mismo usuario, cada uno con su kind.
	subject, err := pkgjwt.Parse(testSecret, out.AccessToken, pkgjwt.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
	subject, err = pkgjwt.Parse(testSecret, out.RefreshToken, pkgjwt.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Credencial válida + cuenta deshabilitada = Forbidden, no Unauthorized.
func TestLogin_CuentaInactiva_Forbidden(t *testing.T) {
	u := testUser(t, "secreto123")
	u.IsActive = false
	uc := auth.NewUseCase(newFakeUserRepo(u), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh — rotación
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotaElParCompleto(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	first, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	second, err := uc.Refresh(dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken, "el access debe rotarse")
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken, "el refresh debe rotarse")

	// El par nuevo sigue apuntando al mismo usuario.
	subject, err := pkgjwt.Parse(testSecret, second.RefreshToken, pkgjwt.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

// Un access token presentado en refresh se rechaza por el kind firmado.
func TestRefresh_ConAccessToken_Unauthorized(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: out.AccessToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_TokenBasura_Unauthorized(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "token.invalido.aqui"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Token firmado válido pero usuario desactivado después de la emisión:
// la cuenta viva manda, no el token.
func TestRefresh_UsuarioDesactivado_UserNotFound(t *testing.T) {
	u := testUser(t, "secreto123")
	repo := newFakeUserRepo(u)
	uc := auth.NewUseCase(repo, testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	u.IsActive = false
	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: out.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve — token a identidad viva
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CargaIdentidadDesdeDB(t *testing.T) {
	companyID := "00000000-0000-0000-0000-00000000000a"
	u := testUser(t, "secreto123")
	u.CompanyID = &companyID
	uc := auth.NewUseCase(newFakeUserRepo(u), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	id, err := uc.Resolve(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, id.UserID)
	assert.Equal(t, "caja1", id.Username)
	assert.Equal(t, entity.RoleCashier, id.RoleName)
	assert.Equal(t, entity.RankStaff, id.Rank)
	require.NotNil(t, id.CompanyID)
	assert.Equal(t, companyID, *id.CompanyID)
}

func TestResolve_ConRefreshToken_Unauthorized(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(testUser(t, "secreto123")), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Resolve(out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_UsuarioDesactivado_UserNotFound(t *testing.T) {
	u := testUser(t, "secreto123")
	uc := auth.NewUseCase(newFakeUserRepo(u), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto123"})
	require.NoError(t, err)

	u.IsActive = false
	_, err = uc.Resolve(out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
