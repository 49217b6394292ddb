package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dcpos-api/internal/domain"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// El índice único (company_id, sku) es la guardia final de unicidad.
type ProductRepo struct {
	db DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, company_id, sku, name, price, cost, is_active, created_at`

// Create persiste un nuevo producto. SKU duplicado en la empresa -> domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.SKU, product.Name,
		product.Price, product.Cost, product.IsActive, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.scanOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCompanyAndSKU obtiene un producto por SKU dentro de una empresa.
func (r *ProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE company_id = $1 AND sku = $2`,
		companyID, sku).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Price, &p.Cost, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Price, &p.Cost, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto. SKU duplicado en la empresa -> domain.ErrDuplicate.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, price = $4, cost = $5, is_active = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Price, product.Cost, product.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con filtro opcional de empresa, búsqueda por nombre/SKU y paginación.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::uuid IS NULL OR company_id = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR sku ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(context.Background(), query,
		filter.CompanyID, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Price, &p.Cost, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Deactivate marca un producto como inactivo (soft-delete).
func (r *ProductRepo) Deactivate(id string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE products SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// DeactivateByCompany desactiva en bloque los productos de una empresa.
func (r *ProductRepo) DeactivateByCompany(companyID string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE products SET is_active = false WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("deactivate products by company: %w", err)
	}
	return nil
}
