package store

import (
	"context"

	"github.com/udining/pos-api/pkg/config"
)

// Open selecciona el motor una sola vez según la configuración: con DATABASE_URL
// definido se conecta a PostgreSQL; si no, usa SQLite embebido. Ningún llamador
// vuelve a preguntar qué motor quedó activo.
func Open(ctx context.Context, cfg config.DBConfig) (Store, error) {
	if cfg.UsePostgres() {
		return NewPostgres(ctx, cfg)
	}
	return NewSQLite(ctx, cfg.SQLitePath)
}
