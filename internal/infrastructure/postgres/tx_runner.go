package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

// Asegura que TxRunner implementa los puertos transaccionales de application.
var _ usecase.CompanyTxRunner = (*TxRunner)(nil)
var _ usecase.ResourceTxRunner = (*TxRunner)(nil)
var _ usecase.ConnectTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCompany inicia una transacción para el alta/actualización de empresa + admin
// y hace Commit o Rollback. La atomicidad empresa/usuario depende de esta tx.
func (r *TxRunner) RunCompany(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companies := NewCompanyRepository(tx)
	users := NewUserRepository(tx)

	if err := fn(companies, users); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunResource inicia una transacción con repos de recursos y categorías
// (create/update de recurso con find-or-create de categoría).
func (r *TxRunner) RunResource(ctx context.Context, fn func(
	resources repository.ResourceRepository,
	categories repository.CategoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resources := NewResourceRepository(tx)
	categories := NewCategoryRepository(tx)

	if err := fn(resources, categories); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunConnect inicia una transacción para el alta de un envío lets-connect
// (chequeo de duplicado + insert en la misma tx).
func (r *TxRunner) RunConnect(ctx context.Context, fn func(
	entries repository.ConnectRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entries := NewConnectRepository(tx)

	if err := fn(entries); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
