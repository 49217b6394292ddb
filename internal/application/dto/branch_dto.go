package dto

// CreateBranchRequest entrada para crear una sucursal (company_id viene de la ruta).
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active"`
}

// BranchListResponse lista de sucursales de una empresa.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
}
