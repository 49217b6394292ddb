package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	db DB
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(db DB) *BranchRepo {
	return &BranchRepo{db: db}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, address, is_active)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		branch.ID, branch.CompanyID, branch.Name, branch.Address, branch.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	var b entity.Branch
	err := r.db.QueryRow(context.Background(),
		`SELECT id, company_id, name, address, is_active FROM branches WHERE id = $1`, id).
		Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `UPDATE branches SET name = $2, address = $3, is_active = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		branch.ID, branch.Name, branch.Address, branch.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// ListByCompany lista las sucursales activas de una empresa.
func (r *BranchRepo) ListByCompany(companyID string) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, is_active
		FROM branches WHERE company_id = $1 AND is_active = true
		ORDER BY name`
	rows, err := r.db.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.IsActive); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Deactivate marca una sucursal como inactiva (soft-delete).
func (r *BranchRepo) Deactivate(id string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE branches SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate branch: %w", err)
	}
	return nil
}

// DeactivateByCompany desactiva en bloque las sucursales de una empresa.
func (r *BranchRepo) DeactivateByCompany(companyID string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE branches SET is_active = false WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("deactivate branches by company: %w", err)
	}
	return nil
}
