package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=1,max=50"`
	Password  string  `json:"password" validate:"required,min=6"`
	RoleID    int     `json:"role_id" validate:"required"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
	BranchID  *string `json:"branch_id" validate:"omitempty,uuid"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleID   *int    `json:"role_id"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse proyección pública de un usuario (sin password_hash).
// Construida campo a campo, nunca copiando el entity completo.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	RoleID    int       `json:"role_id"`
	RoleName  string    `json:"role_name"`
	CompanyID *string   `json:"company_id,omitempty"`
	BranchID  *string   `json:"branch_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
