package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa. Nombre o slug duplicados -> domain.ErrDuplicate.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, slug, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Slug, company.IsActive, company.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.scanOne(`SELECT id, name, slug, is_active, created_at FROM companies WHERE id = $1`, id)
}

// GetBySlug obtiene una empresa por slug.
func (r *CompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	return r.scanOne(`SELECT id, name, slug, is_active, created_at FROM companies WHERE slug = $1`, slug)
}

func (r *CompanyRepo) scanOne(query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente. Slug duplicado -> domain.ErrDuplicate.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `UPDATE companies SET name = $2, slug = $3, is_active = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Slug, company.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas activas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, slug, is_active, created_at
		FROM companies WHERE is_active = true
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Deactivate marca una empresa como inactiva (soft-delete).
func (r *CompanyRepo) Deactivate(id string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE companies SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate company: %w", err)
	}
	return nil
}
