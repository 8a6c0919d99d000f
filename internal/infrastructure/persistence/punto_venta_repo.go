package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.PuntoVentaRepository = (*PuntoVentaRepo)(nil)

// PuntoVentaRepo lectura de puntos de venta (datos de referencia sembrados).
type PuntoVentaRepo struct {
	q store.Querier
}

// NewPuntoVentaRepository construye el adaptador.
func NewPuntoVentaRepository(q store.Querier) *PuntoVentaRepo {
	return &PuntoVentaRepo{q: q}
}

const puntoVentaColumns = `id, codigo, nombre, tipo_servicio, ubicacion, estado, COALESCE(fecha_creacion, '')`

// List devuelve todos los puntos de venta.
func (r *PuntoVentaRepo) List(ctx context.Context) ([]*entity.PuntoVenta, error) {
	query := `SELECT ` + puntoVentaColumns + ` FROM puntos_venta ORDER BY codigo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list puntos_venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.PuntoVenta
	for rows.Next() {
		var p entity.PuntoVenta
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.TipoServicio, &p.Ubicacion, &p.Estado, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan punto_venta: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un punto de venta. Devuelve (nil, nil) si no existe.
func (r *PuntoVentaRepo) GetByID(ctx context.Context, id string) (*entity.PuntoVenta, error) {
	query := `SELECT ` + puntoVentaColumns + ` FROM puntos_venta WHERE id = $1`
	var p entity.PuntoVenta
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Codigo, &p.Nombre, &p.TipoServicio, &p.Ubicacion, &p.Estado, &p.FechaCreacion)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get punto_venta: %w", err)
	}
	return &p, nil
}
