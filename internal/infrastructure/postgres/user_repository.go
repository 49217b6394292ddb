package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Las lecturas traen role.name vía JOIN para derivar el rango de privilegio.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `u.id, u.username, u.password_hash, u.role_id, r.name, u.company_id, u.branch_id, u.is_active, u.created_at`

// Create persiste un nuevo usuario. Username duplicado -> domain.ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role_id, company_id, branch_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.RoleID,
		user.CompanyID, user.BranchID, user.IsActive, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (con nombre de rol).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1`
	return r.scanOne(query, id)
}

// GetByUsername obtiene un usuario por username (único global).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE u.username = $1`
	return r.scanOne(query, username)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName,
		&u.CompanyID, &u.BranchID, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario. Username duplicado -> domain.ErrDuplicate.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, password_hash = $3, role_id = $4, branch_id = $5, is_active = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.RoleID, user.BranchID, user.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios aplicando los filtros de empresa y sucursal que vengan definidos.
func (r *UserRepo) List(filter repository.UserFilter) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE ($1::uuid IS NULL OR u.company_id = $1)
		  AND ($2::uuid IS NULL OR u.branch_id = $2)
		ORDER BY u.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, filter.CompanyID, filter.BranchID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName,
			&u.CompanyID, &u.BranchID, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Deactivate marca un usuario como inactivo (soft-delete).
func (r *UserRepo) Deactivate(id string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE users SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// DeactivateByCompany desactiva en bloque los usuarios de una empresa.
func (r *UserRepo) DeactivateByCompany(companyID string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE users SET is_active = false WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("deactivate users by company: %w", err)
	}
	return nil
}
