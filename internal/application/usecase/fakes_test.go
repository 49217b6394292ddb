package usecase_test

import (
	"context"

	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

var (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"
)

func globalAdmin() authz.Identity {
	return authz.Identity{UserID: "u-global", Username: "root",
		RoleName: entity.RoleGlobalAdmin, Rank: entity.RankGlobalAdmin}
}

func companyAdmin(company string) authz.Identity {
	return authz.Identity{UserID: "u-admin-" + company, Username: "admin",
		RoleName: entity.RoleCompanyAdmin, Rank: entity.RankCompanyAdmin, CompanyID: &company}
}

func cashier(company string) authz.Identity {
	return authz.Identity{UserID: "u-cashier-" + company, Username: "caja1",
		RoleName: entity.RoleCashier, Rank: entity.RankStaff, CompanyID: &company}
}

// fakeUserRepo

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) List(f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.CompanyID != nil && (u.CompanyID == nil || *u.CompanyID != *f.CompanyID) {
			continue
		}
		if f.BranchID != nil && (u.BranchID == nil || *u.BranchID != *f.BranchID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Deactivate(id string) error {
	if u, ok := r.users[id]; ok {
		u.IsActive = false
	}
	return nil
}

func (r *fakeUserRepo) DeactivateByCompany(companyID string) error {
	for _, u := range r.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			u.IsActive = false
		}
	}
	return nil
}

// fakeRoleRepo

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int]*entity.Role{
		1: {ID: 1, Name: entity.RoleGlobalAdmin},
		2: {ID: 2, Name: entity.RoleCompanyAdmin},
		3: {ID: 3, Name: entity.RoleCashier},
	}}
}

func (r *fakeRoleRepo) GetByID(id int) (*entity.Role, error) { return r.roles[id], nil }

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	return []*entity.Role{r.roles[1], r.roles[2], r.roles[3]}, nil
}

// fakeCompanyRepo

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[string]*entity.Company{}}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func activeCompany(id string) *entity.Company {
	return &entity.Company{ID: id, Name: "Empresa " + id, Slug: "empresa-" + id, IsActive: true}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.companies[id], nil }

func (r *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Deactivate(id string) error {
	if c, ok := r.companies[id]; ok {
		c.IsActive = false
	}
	return nil
}

// fakeBranchRepo

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func newFakeBranchRepo(branches ...*entity.Branch) *fakeBranchRepo {
	r := &fakeBranchRepo{branches: map[string]*entity.Branch{}}
	for _, b := range branches {
		r.branches[b.ID] = b
	}
	return r
}

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.branches[b.ID] = b; return nil }

func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) { return r.branches[id], nil }

func (r *fakeBranchRepo) Update(b *entity.Branch) error { r.branches[b.ID] = b; return nil }

func (r *fakeBranchRepo) ListByCompany(companyID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range r.branches {
		if b.CompanyID == companyID && b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBranchRepo) Deactivate(id string) error {
	if b, ok := r.branches[id]; ok {
		b.IsActive = false
	}
	return nil
}

func (r *fakeBranchRepo) DeactivateByCompany(companyID string) error {
	for _, b := range r.branches {
		if b.CompanyID == companyID {
			b.IsActive = false
		}
	}
	return nil
}

// fakeProductRepo

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if f.CompanyID != nil && p.CompanyID != *f.CompanyID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

func (r *fakeProductRepo) DeactivateByCompany(companyID string) error {
	for _, p := range r.products {
		if p.CompanyID == companyID {
			p.IsActive = false
		}
	}
	return nil
}

// fakeCascadeRunner ejecuta el callback sin transacción real, con los repos en memoria.

type fakeCascadeRunner struct {
	companyRepo *fakeCompanyRepo
	branchRepo  *fakeBranchRepo
	userRepo    *fakeUserRepo
	productRepo *fakeProductRepo
}

var _ usecase.CascadeRunner = (*fakeCascadeRunner)(nil)

func (r *fakeCascadeRunner) Run(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.companyRepo, r.branchRepo, r.userRepo, r.productRepo)
}
