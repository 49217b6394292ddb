package dto

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// RoleListResponse lista de roles disponibles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}
