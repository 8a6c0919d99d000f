package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.ConsecutivoRepository = (*ConsecutivoRepo)(nil)

// ConsecutivoRepo asigna números secuenciales con un contador por (prefijo, fecha).
// El incremento es un upsert atómico en una sola sentencia: bajo contención el
// motor serializa las actualizaciones de la fila y dos llamadores nunca reciben
// el mismo valor, a diferencia del patrón leer-último-e-incrementar.
type ConsecutivoRepo struct {
	q store.Querier
}

// NewConsecutivoRepository construye el adaptador. En el flujo de creación de
// órdenes se pasa la Tx para que la reserva participe del rollback.
func NewConsecutivoRepository(q store.Querier) *ConsecutivoRepo {
	return &ConsecutivoRepo{q: q}
}

// Siguiente incrementa y devuelve el contador de (prefijo, fecha). La fecha
// vacía denota un contador global (numero de orden). La sintaxis ON CONFLICT
// DO UPDATE ... RETURNING es válida tanto en PostgreSQL como en SQLite.
func (r *ConsecutivoRepo) Siguiente(ctx context.Context, prefijo, fecha string) (int64, error) {
	query := `
		INSERT INTO consecutivos (prefijo, fecha, valor)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefijo, fecha) DO UPDATE SET valor = valor + 1
		RETURNING valor`
	var valor int64
	if err := r.q.QueryRow(ctx, query, prefijo, fecha).Scan(&valor); err != nil {
		return 0, fmt.Errorf("siguiente consecutivo %s-%s: %w", prefijo, fecha, err)
	}
	return valor, nil
}
