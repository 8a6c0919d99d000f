package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo lectura de la configuración normativa.
type ConfiguracionRepo struct {
	q store.Querier
}

// NewConfiguracionRepository construye el adaptador.
func NewConfiguracionRepository(q store.Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// ListActivas devuelve los parámetros normativos vigentes.
func (r *ConfiguracionRepo) ListActivas(ctx context.Context) ([]*entity.ConfiguracionNormativa, error) {
	query := `
		SELECT id, parametro, valor, COALESCE(descripcion, ''), COALESCE(resolucion_aplicable, ''),
		       COALESCE(fecha_vigencia, ''), activo, COALESCE(fecha_actualizacion, '')
		FROM configuracion_normativa WHERE activo = 1 ORDER BY parametro`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list configuracion: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConfiguracionNormativa
	for rows.Next() {
		var c entity.ConfiguracionNormativa
		err := rows.Scan(
			&c.ID, &c.Parametro, &c.Valor, &c.Descripcion, &c.ResolucionAplicable,
			&c.FechaVigencia, &c.Activo, &c.FechaActualizacion,
		)
		if err != nil {
			return nil, fmt.Errorf("scan configuracion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
