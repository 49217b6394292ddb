package entity

import "time"

// Company representa una empresa/tenant: la unidad de aislamiento de datos.
// Posee sucursales, usuarios y productos.
type Company struct {
	ID        string
	Name      string // único global
	Slug      string // identificador URL-friendly, único global
	IsActive  bool
	CreatedAt time.Time
}
