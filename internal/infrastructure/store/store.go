// Package store abstrae el motor de base de datos detrás de un contrato único:
// ejecutar sentencia, leer una fila, leer varias filas y ejecutar un script de
// esquema. Hay dos adaptadores intercambiables (PostgreSQL en red y SQLite
// embebido); los llamadores nunca preguntan cuál está activo. El texto SQL es
// idéntico en ambos motores: placeholders $1..$n en orden, upserts
// ON CONFLICT, timestamps TEXT escritos por la aplicación.
package store

import (
	"context"
	"errors"
)

// ErrNoRows indica que la consulta de una fila no encontró resultados.
// Los adaptadores traducen el error nativo del motor a este sentinel.
var ErrNoRows = errors.New("store: sin filas")

// Row es una fila pendiente de escanear.
type Row interface {
	Scan(dest ...any) error
}

// Rows es un cursor de resultados.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// Querier son las operaciones comunes a Store y Tx. Los repositorios se
// escriben contra Querier para funcionar igual dentro y fuera de transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) error
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Tx es una transacción abierta.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store es la conexión al motor seleccionado al arranque.
type Store interface {
	Querier
	Begin(ctx context.Context) (Tx, error)
	ExecScript(ctx context.Context, sql string) error
	Close()
}
