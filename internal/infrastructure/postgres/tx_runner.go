package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amartindev/TenjoConecta/internal/application/admin"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
)

var _ admin.ImageTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImages inicia una transacción, ejecuta fn con un repositorio de imágenes
// atado a la tx y hace Commit o Rollback. Lo usa el cambio de imagen principal
// para que el par clear-then-set sea atómico.
func (r *TxRunner) RunImages(ctx context.Context, fn func(images repository.BusinessImageRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBusinessImageRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
