package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/udining/pos-api/internal/domain/entity"
	"github.com/udining/pos-api/internal/domain/repository"
	"github.com/udining/pos-api/internal/infrastructure/store"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo implementación del puerto OrdenRepository. Acepta Store o Tx (Querier);
// en el flujo de creación siempre corre dentro de la transacción del TxRunner.
type OrdenRepo struct {
	q store.Querier
}

// NewOrdenRepository construye el adaptador de órdenes.
func NewOrdenRepository(q store.Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

const ordenColumns = `id, numero, cedula, id_punto_venta, COALESCE(fecha, ''), subtotal, impuestos, total,
	COALESCE(metodo_pago, ''), COALESCE(metodo_validacion, ''), estado`

// Create persiste la cabecera de la orden. Un numero repetido produce
// domain.ErrDuplicate (constraint UNIQUE sobre numero).
func (r *OrdenRepo) Create(ctx context.Context, o *entity.Orden) error {
	query := `
		INSERT INTO ordenes (id, numero, cedula, id_punto_venta, fecha, subtotal, impuestos, total, metodo_pago, metodo_validacion, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	err := r.q.Exec(ctx, query,
		o.ID, o.Numero, o.Cedula, o.IDPuntoVenta, o.Fecha,
		o.Subtotal, o.Impuestos, o.Total, o.MetodoPago, o.MetodoValidacion, o.Estado,
	)
	if err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de la orden.
func (r *OrdenRepo) CreateDetalle(ctx context.Context, d *entity.DetalleOrden) error {
	query := `
		INSERT INTO detalle_ordenes (id, id_orden, id_producto, cantidad, precio_unitario, subtotal, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	err := r.q.Exec(ctx, query,
		d.ID, d.IDOrden, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.Subtotal, d.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert detalle_orden: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden. Devuelve (nil, nil) si no existe.
func (r *OrdenRepo) GetByID(ctx context.Context, id string) (*entity.Orden, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes WHERE id = $1`
	o, err := scanOrden(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return o, nil
}

// GetDetalles obtiene las líneas de una orden.
func (r *OrdenRepo) GetDetalles(ctx context.Context, idOrden string) ([]*entity.DetalleOrden, error) {
	query := `
		SELECT id, id_orden, id_producto, cantidad, precio_unitario, subtotal, COALESCE(notas, '')
		FROM detalle_ordenes WHERE id_orden = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, idOrden)
	if err != nil {
		return nil, fmt.Errorf("list detalle_ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleOrden
	for rows.Next() {
		var d entity.DetalleOrden
		if err := rows.Scan(&d.ID, &d.IDOrden, &d.IDProducto, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal, &d.Notas); err != nil {
			return nil, fmt.Errorf("scan detalle_orden: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListConNombres devuelve todas las órdenes con el nombre del usuario y del
// punto de venta (el listado del tablero de operación).
func (r *OrdenRepo) ListConNombres(ctx context.Context) ([]*entity.OrdenResumen, error) {
	query := `
		SELECT o.id, o.numero, o.cedula, o.id_punto_venta, COALESCE(o.fecha, ''), o.subtotal, o.impuestos, o.total,
		       COALESCE(o.metodo_pago, ''), COALESCE(o.metodo_validacion, ''), o.estado,
		       u.nombre, p.nombre
		FROM ordenes o
		JOIN usuarios u ON o.cedula = u.cedula
		JOIN puntos_venta p ON o.id_punto_venta = p.id
		ORDER BY o.numero`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenResumen
	for rows.Next() {
		var o entity.OrdenResumen
		err := rows.Scan(
			&o.ID, &o.Numero, &o.Cedula, &o.IDPuntoVenta, &o.Fecha, &o.Subtotal, &o.Impuestos, &o.Total,
			&o.MetodoPago, &o.MetodoValidacion, &o.Estado,
			&o.NombreUsuario, &o.PuntoVenta,
		)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la orden. La validación del valor es del caso de uso.
func (r *OrdenRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	if err := r.q.Exec(ctx, `UPDATE ordenes SET estado = $1 WHERE id = $2`, estado, id); err != nil {
		return fmt.Errorf("update estado orden: %w", err)
	}
	return nil
}

func scanOrden(row store.Row) (*entity.Orden, error) {
	var o entity.Orden
	err := row.Scan(
		&o.ID, &o.Numero, &o.Cedula, &o.IDPuntoVenta, &o.Fecha,
		&o.Subtotal, &o.Impuestos, &o.Total, &o.MetodoPago, &o.MetodoValidacion, &o.Estado,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
