package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
	"github.com/jhoicas/dcpos-api/internal/domain/repository"
)

var _ usecase.CascadeRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Se usa para la desactivación en cascada de una empresa: cualquier fallo
// revierte la transacción completa, nunca queda un estado parcial.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	branchRepo := NewBranchRepository(tx)
	userRepo := NewUserRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(companyRepo, branchRepo, userRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
