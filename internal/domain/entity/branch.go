package entity

// Branch representa una sucursal física perteneciente a exactamente una empresa.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsActive  bool
}
