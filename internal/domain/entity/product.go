package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// SKU es único por empresa, no global.
type Product struct {
	ID        string
	CompanyID string
	SKU       string
	Name      string
	Price     decimal.Decimal
	Cost      decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
}
