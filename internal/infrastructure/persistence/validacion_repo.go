package persistence

import (
	"context"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.ValidacionRepository = (*ValidacionRepo)(nil)

// ValidacionRepo registro de intentos de validación de acceso (solo-inserción).
type ValidacionRepo struct {
	q store.Querier
}

// NewValidacionRepository construye el adaptador.
func NewValidacionRepository(q store.Querier) *ValidacionRepo {
	return &ValidacionRepo{q: q}
}

// Create agrega un intento de validación.
func (r *ValidacionRepo) Create(ctx context.Context, v *entity.ValidacionAcceso) error {
	query := `
		INSERT INTO validaciones_acceso (id, cedula, metodo_validacion, fecha_hora, id_punto_venta, exitosa, ip_validacion, mensaje_error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	err := r.q.Exec(ctx, query,
		v.ID, v.Cedula, v.MetodoValidacion, v.FechaHora, nullIfEmpty(v.IDPuntoVenta),
		v.Exitosa, v.IPValidacion, v.MensajeError,
	)
	if err != nil {
		return fmt.Errorf("insert validacion_acceso: %w", err)
	}
	return nil
}

// List devuelve los intentos registrados, más recientes primero.
func (r *ValidacionRepo) List(ctx context.Context) ([]*entity.ValidacionAcceso, error) {
	query := `
		SELECT id, cedula, metodo_validacion, COALESCE(fecha_hora, ''), COALESCE(id_punto_venta, ''),
		       exitosa, COALESCE(ip_validacion, ''), COALESCE(mensaje_error, '')
		FROM validaciones_acceso ORDER BY fecha_hora DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list validaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.ValidacionAcceso
	for rows.Next() {
		var v entity.ValidacionAcceso
		err := rows.Scan(
			&v.ID, &v.Cedula, &v.MetodoValidacion, &v.FechaHora, &v.IDPuntoVenta,
			&v.Exitosa, &v.IPValidacion, &v.MensajeError,
		)
		if err != nil {
			return nil, fmt.Errorf("scan validacion: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
