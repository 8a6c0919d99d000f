package repository

import "context"

// ConsecutivoRepository asigna números secuenciales contention-safe.
// Siguiente incrementa y devuelve el contador de (prefijo, fecha) en una sola
// operación atómica del motor; dos llamadas concurrentes nunca reciben el mismo
// valor. La fecha vacía denota un contador global (caso del numero de orden).
type ConsecutivoRepository interface {
	Siguiente(ctx context.Context, prefijo, fecha string) (int64, error)
}
