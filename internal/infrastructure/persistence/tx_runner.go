package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/application/orders"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción del motor activo.
type TxRunner struct {
	st store.Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(st store.Store) *TxRunner {
	return &TxRunner{st: st}
}

// Run inicia una transacción, ejecuta fn con los repos del flujo de órdenes
// atados a la tx y hace Commit o Rollback. Orden, detalles, consecutivos y
// documento equivalente se escriben o se descartan juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ordenes repository.OrdenRepository,
	documentos repository.DocumentoRepository,
	consecutivos repository.ConsecutivoRepository,
) error) error {
	tx, err := r.st.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrdenRepository(tx), NewDocumentoRepository(tx), NewConsecutivoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
