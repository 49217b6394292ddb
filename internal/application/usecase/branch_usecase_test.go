package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
)

func newBranchUC(branches *fakeBranchRepo, companies *fakeCompanyRepo) *usecase.BranchUseCase {
	return usecase.NewBranchUseCase(branches, companies)
}

func TestBranchCreate_SoloGlobalAdmin(t *testing.T) {
	uc := newBranchUC(newFakeBranchRepo(), newFakeCompanyRepo(activeCompany(companyA)))

	out, err := uc.Create(globalAdmin(), companyA, dto.CreateBranchRequest{Name: "Centro", Address: "Calle 1"})
	require.NoError(t, err)
	assert.Equal(t, companyA, out.CompanyID)
	assert.True(t, out.IsActive)

	_, err = uc.Create(companyAdmin(companyA), companyA, dto.CreateBranchRequest{Name: "Norte"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBranchCreate_EmpresaInexistente_NotFound(t *testing.T) {
	uc := newBranchUC(newFakeBranchRepo(), newFakeCompanyRepo())

	_, err := uc.Create(globalAdmin(), companyA, dto.CreateBranchRequest{Name: "Centro"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBranchListByCompany_TenantAjeno_Forbidden(t *testing.T) {
	uc := newBranchUC(newFakeBranchRepo(), newFakeCompanyRepo(activeCompany(companyA), activeCompany(companyB)))

	_, err := uc.ListByCompany(cashier(companyA), companyB)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBranchListByCompany_MiembroDelTenant(t *testing.T) {
	branches := newFakeBranchRepo(
		&entity.Branch{ID: "b-1", CompanyID: companyA, Name: "Centro", IsActive: true},
		&entity.Branch{ID: "b-2", CompanyID: companyA, Name: "Norte", IsActive: false},
	)
	uc := newBranchUC(branches, newFakeCompanyRepo(activeCompany(companyA)))

	out, err := uc.ListByCompany(cashier(companyA), companyA)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "las sucursales inactivas no se listan")
	assert.Equal(t, "b-1", out.Items[0].ID)
}

func TestBranchUpdate_CompanyAdminDelTenant(t *testing.T) {
	branches := newFakeBranchRepo(&entity.Branch{ID: "b-1", CompanyID: companyA, Name: "Centro", IsActive: true})
	uc := newBranchUC(branches, newFakeCompanyRepo(activeCompany(companyA)))

	name := "Centro Renovado"
	out, err := uc.Update(companyAdmin(companyA), "b-1", dto.UpdateBranchRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)

	_, err = uc.Update(companyAdmin(companyB), "b-1", dto.UpdateBranchRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La ruta trae empresa y sucursal; si no coinciden, para ese tenant la sucursal no existe.
func TestBranchDelete_EmpresaNoCoincide_NotFound(t *testing.T) {
	branches := newFakeBranchRepo(&entity.Branch{ID: "b-1", CompanyID: companyB, Name: "Centro", IsActive: true})
	uc := newBranchUC(branches, newFakeCompanyRepo(activeCompany(companyA), activeCompany(companyB)))

	err := uc.Delete(globalAdmin(), companyA, "b-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBranchDelete_SoftDelete(t *testing.T) {
	branches := newFakeBranchRepo(&entity.Branch{ID: "b-1", CompanyID: companyA, Name: "Centro", IsActive: true})
	uc := newBranchUC(branches, newFakeCompanyRepo(activeCompany(companyA)))

	require.NoError(t, uc.Delete(globalAdmin(), companyA, "b-1"))

	stored, _ := branches.GetByID("b-1")
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
}
