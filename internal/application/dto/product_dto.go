package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CompanyID *string         `json:"company_id" validate:"omitempty,uuid"`
	SKU       string          `json:"sku" validate:"required,min=1,max=50"`
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	SKU      *string          `json:"sku" validate:"omitempty,min=1,max=50"`
	Name     *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	IsActive *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
